package timezone

import "time"

// Il salone ha una sede sola: tutte le date sono in ora italiana.
const DefaultTimezone = "Europe/Rome"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today è la data odierna YYYY-MM-DD: il pivot per la potatura delle
// occorrenze future.
func Today() string {
	return Now().Format("2006-01-02")
}
