package utils

import "time"

// Western zodiac, Polish sign names as displayed across the portal.
const (
	ZodiacAries       = "Baran"
	ZodiacTaurus      = "Byk"
	ZodiacGemini      = "Bliźnięta"
	ZodiacCancer      = "Rak"
	ZodiacLeo         = "Lew"
	ZodiacVirgo       = "Panna"
	ZodiacLibra       = "Waga"
	ZodiacScorpio     = "Skorpion"
	ZodiacSagittarius = "Strzelec"
	ZodiacCapricorn   = "Koziorożec"
	ZodiacAquarius    = "Wodnik"
	ZodiacPisces      = "Ryby"
)

// ZodiacSignFromBirthDate resolves the sign for a "2006-01-02" birth
// date. Returns "" when the date is empty or unparsable, which callers
// treat as "zodiac unresolved".
func ZodiacSignFromBirthDate(birthDate string) string {
	if birthDate == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return ""
	}
	return zodiacSign(int(t.Month()), t.Day())
}

func zodiacSign(month, day int) string {
	switch month {
	case 1:
		if day <= 19 {
			return ZodiacCapricorn
		}
		return ZodiacAquarius
	case 2:
		if day <= 18 {
			return ZodiacAquarius
		}
		return ZodiacPisces
	case 3:
		if day <= 20 {
			return ZodiacPisces
		}
		return ZodiacAries
	case 4:
		if day <= 19 {
			return ZodiacAries
		}
		return ZodiacTaurus
	case 5:
		if day <= 20 {
			return ZodiacTaurus
		}
		return ZodiacGemini
	case 6:
		if day <= 21 {
			return ZodiacGemini
		}
		return ZodiacCancer
	case 7:
		if day <= 22 {
			return ZodiacCancer
		}
		return ZodiacLeo
	case 8:
		if day <= 22 {
			return ZodiacLeo
		}
		return ZodiacVirgo
	case 9:
		if day <= 22 {
			return ZodiacVirgo
		}
		return ZodiacLibra
	case 10:
		if day <= 22 {
			return ZodiacLibra
		}
		return ZodiacScorpio
	case 11:
		if day <= 21 {
			return ZodiacScorpio
		}
		return ZodiacSagittarius
	default:
		if day <= 21 {
			return ZodiacSagittarius
		}
		return ZodiacCapricorn
	}
}
