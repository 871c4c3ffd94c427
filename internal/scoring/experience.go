package scoring

import "fmt"

// experienceScore computes the experience sub-score and penalty shared by
// every domain scorer. Entry-level roles (minExp == 0) never penalize;
// under-experienced candidates are penalized by the size of the gap.
func experienceScore(years, minExp, maxExp int) (score, penalty int, reason string) {
	if minExp == 0 {
		switch {
		case years == 0:
			return 15, 0, "no experience required, perfect for entry level"
		case years <= 2:
			return 18, 0, fmt.Sprintf("%d years fits an entry level role well", years)
		default:
			return 12, 0, fmt.Sprintf("%d years, possibly overqualified for entry level", years)
		}
	}

	if years == 0 {
		switch {
		case minExp == 1:
			return 8, 15, fmt.Sprintf("no experience against %d year required", minExp)
		case minExp == 2:
			return 5, 20, fmt.Sprintf("no experience against %d years required", minExp)
		default:
			return 3, 25, fmt.Sprintf("no experience against %d years required", minExp)
		}
	}

	if years >= minExp && years <= maxExp {
		return 20, 0, fmt.Sprintf("%d years within the required %d-%d range", years, minExp, maxExp)
	}
	if years > maxExp {
		return 15, 0, fmt.Sprintf("%d years exceeds the %d year maximum", years, maxExp)
	}

	switch gap := minExp - years; gap {
	case 1:
		return 12, 10, fmt.Sprintf("1 year short of the required %d", minExp)
	case 2:
		return 8, 15, fmt.Sprintf("2 years short of the required %d", minExp)
	default:
		return 5, 20, fmt.Sprintf("%d years short of the required %d", gap, minExp)
	}
}
