package calendar

import (
	"fmt"
	"time"
)

// daysThai holds Thai weekday names indexed Monday=0 .. Sunday=6.
var daysThai = []string{
	"จันทร์",
	"อังคาร",
	"พุธ",
	"พฤหัสบดี",
	"ศุกร์",
	"เสาร์",
	"อาทิตย์",
}

// daysEnglish holds English weekday names with the same Monday=0 indexing.
var daysEnglish = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// monthsThaiShort holds abbreviated Thai month names indexed January=0.
var monthsThaiShort = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// monthsThaiLong holds full Thai month names indexed January=0.
var monthsThaiLong = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน",
	"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม",
	"กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// MonthStyle selects between abbreviated and full Thai month names.
type MonthStyle string

const (
	MonthStyleShort MonthStyle = "short"
	MonthStyleLong  MonthStyle = "long"
)

// mondayIndex converts Go's Sunday-based time.Weekday to Monday=0 indexing.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// WeekdayThai returns the Thai name of the weekday.
func WeekdayThai(wd time.Weekday) string {
	return daysThai[mondayIndex(wd)]
}

// WeekdayEnglish returns the English name of the weekday.
func WeekdayEnglish(wd time.Weekday) string {
	return daysEnglish[mondayIndex(wd)]
}

// WeekdayThaiCompact returns the Thai weekday name in its colloquial compact
// form.  Only Thursday has a distinct compact spelling.
func WeekdayThaiCompact(wd time.Weekday) string {
	name := WeekdayThai(wd)
	if name == "พฤหัสบดี" {
		return "พฤหัส"
	}
	return name
}

// MonthThai returns the Thai month name for month 1..12 in the given style.
// Out-of-range months return an empty string.
func MonthThai(month int, style MonthStyle) string {
	if month < 1 || month > 12 {
		return ""
	}
	if style == MonthStyleLong {
		return monthsThaiLong[month-1]
	}
	return monthsThaiShort[month-1]
}

// FormatThaiDate renders a normalized date as a full Thai date line such as
// "วันจันทร์ที่ 27 ต.ค. 2568", with the year expressed in the Buddhist Era.
func FormatThaiDate(d NormalizedDate, wd time.Weekday, style MonthStyle) string {
	return fmt.Sprintf("วัน%sที่ %d %s %d",
		WeekdayThai(wd), d.Day, MonthThai(d.Month, style), d.YearBE())
}

//Personal.AI order the ending
