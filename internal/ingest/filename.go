package ingest

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileIdentity is the show identity recovered from a score sheet's file
// name. It only fills fields the page header failed to supply; header
// values always win on conflict.
type FileIdentity struct {
	ShowDate time.Time
	HostID   string // e.g. "temescal_canyon_hs"
	Weekday  string // e.g. "Saturday"
	City     string // e.g. "Lake Elsinore"
	State    string // e.g. "CA"
	ShowName string // e.g. "Temescal Canyon Hs Saturday"
}

// weekdayTokens are the recognized pivot tokens. Everything before the
// pivot (after the date) is the host id, everything after it except the
// trailing state token is the city.
var weekdayTokens = map[string]struct{}{
	"saturday":   {},
	"sunday":     {},
	"prelims":    {},
	"semifinals": {},
	"finals":     {},
}

var titleCaser = cases.Title(language.AmericanEnglish)

// ParseFilename parses a file name of the form
// YYYY_MM_DD_<hostid>[_hs]_<weekday>_<city>_<ST>[.pdf].
func ParseFilename(name string) (FileIdentity, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 6 {
		return FileIdentity{}, &FormatError{Input: name, Reason: "filename too short"}
	}

	showDate, err := time.Parse("2006_01_02", strings.Join(parts[:3], "_"))
	if err != nil {
		return FileIdentity{}, &FormatError{Input: name, Reason: "filename does not start with YYYY_MM_DD"}
	}

	wdIdx := -1
	for i, p := range parts {
		if _, ok := weekdayTokens[strings.ToLower(p)]; ok {
			wdIdx = i
			break
		}
	}
	if wdIdx == -1 {
		return FileIdentity{}, &FormatError{Input: name, Reason: "no weekday token"}
	}

	var hostParts []string
	if wdIdx > 3 {
		hostParts = parts[3:wdIdx]
	}
	if len(hostParts) == 0 || strings.ToLower(hostParts[len(hostParts)-1]) != "hs" {
		hostParts = append(hostParts, "hs")
	}
	hostID := strings.Join(hostParts, "_")

	weekday := titleCaser.String(parts[wdIdx])

	var cityParts []string
	for _, p := range parts[wdIdx+1 : len(parts)-1] {
		cityParts = append(cityParts, titleCaser.String(p))
	}
	city := strings.Join(cityParts, " ")

	state := strings.ToUpper(parts[len(parts)-1])

	showName := titleCaser.String(strings.ReplaceAll(hostID, "_", " ")) + " " + weekday

	return FileIdentity{
		ShowDate: showDate,
		HostID:   hostID,
		Weekday:  weekday,
		City:     city,
		State:    state,
		ShowName: showName,
	}, nil
}
