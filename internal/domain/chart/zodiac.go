// Package chart implements the simplified ecliptic-longitude model used for
// chart computation, transit classification, and compatibility scoring.
// Positions are derived from the calendar date alone; this is a deliberate
// approximation, not an ephemeris.
package chart

// ZodiacSystem selects between the tropical and sidereal zodiac.
type ZodiacSystem string

const (
	SystemTropical ZodiacSystem = "tropical"
	SystemSidereal ZodiacSystem = "sidereal"
)

// AyanamsaOffset is the fixed sidereal offset, in degrees, subtracted from
// tropical longitudes.
const AyanamsaOffset = 23.0

// signsEnglish holds Western sign names indexed Aries=0.
var signsEnglish = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// signsThai holds Thai sign names with the same Aries=0 indexing.
var signsThai = []string{
	"เมษ", "พฤษภ", "มิถุน", "กรกฎ", "สิงห์", "กันย์",
	"ตุล", "พิจิก", "ธนู", "มังกร", "กุมภ์", "มีน",
}

// SignIndex maps an ecliptic longitude in degrees to a sign index 0..11.
func SignIndex(longitude float64) int {
	idx := int(longitude/30.0) % 12
	if idx < 0 {
		idx += 12
	}
	return idx
}

// SignName returns the Western name of the sign containing the longitude.
func SignName(longitude float64) string {
	return signsEnglish[SignIndex(longitude)]
}

// SignNameThai returns the Thai name of the sign containing the longitude.
func SignNameThai(longitude float64) string {
	return signsThai[SignIndex(longitude)]
}

// SignNameFor returns the sign name in the naming convention of the given
// system: Thai names for the sidereal zodiac, Western names otherwise.
func SignNameFor(longitude float64, system ZodiacSystem) string {
	if system == SystemSidereal {
		return SignNameThai(longitude)
	}
	return SignName(longitude)
}

// Valid reports whether s is a recognised zodiac system.
func (s ZodiacSystem) Valid() bool {
	return s == SystemTropical || s == SystemSidereal
}

//Personal.AI order the ending
