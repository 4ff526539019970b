package game

var seasons = [4]string{"Spring", "Summer", "Autumn", "Winter"}

func TimeOfDayAt(hour int) string {
	switch {
	case 6 <= hour && hour < 18:
		return "Day"
	case 18 <= hour && hour < 22:
		return "Sunset"
	default:
		return "Night"
	}
}

// Seasons turn weekly.
func SeasonAt(day int) string {
	return seasons[(day/7)%4]
}
