package services

import (
	"fmt"
	"kucukaslan/timeapp/domain"
	"time"
	_ "time/tzdata" // the runtime image ships no zoneinfo
)

// ISO 8601 with a numeric offset; the microsecond fraction is omitted when zero
const (
	isoLayout         = "2006-01-02T15:04:05-07:00"
	isoLayoutFraction = "2006-01-02T15:04:05.000000-07:00"
)

func formatISO(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoLayout)
	}
	return t.Format(isoLayoutFraction)
}

type city struct {
	label    string
	tz       string
	location *time.Location
}

// WorldClockCities lists the cities reported by /time/now, in order
var WorldClockCities = [][2]string{
	{"New York", "America/New_York"},
	{"Beijing", "Asia/Shanghai"},
	{"Sydney", "Australia/Sydney"},
	{"Delhi", "Asia/Kolkata"},
}

var _ domain.TimeService = &timeService{}

type timeService struct {
	cities []city
}

func NewTimeService() (domain.TimeService, error) {
	cities := make([]city, 0, len(WorldClockCities))
	for _, c := range WorldClockCities {
		location, err := time.LoadLocation(c[1])
		if err != nil {
			return nil, fmt.Errorf("failed to load time zone %s: %w", c[1], err)
		}
		cities = append(cities, city{label: c[0], tz: c[1], location: location})
	}
	return &timeService{cities: cities}, nil
}

func (s *timeService) Now(now time.Time) []domain.CityTime {
	times := make([]domain.CityTime, len(s.cities))
	for i, c := range s.cities {
		times[i] = domain.CityTime{
			Label: c.label,
			TZ:    c.tz,
			ISO:   formatISO(now.In(c.location)),
		}
	}
	return times
}
