// Package report renders weather responses and failures as terminal text.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-report/models"
)

// dayCountWords spells out forecast lengths for the banner. A single day never
// takes the forecast branch.
var dayCountWords = map[int]string{
	2: "TWO",
	3: "THREE",
	4: "FOUR",
	5: "FIVE",
}

// DayCountWord returns the banner word for n forecast days, or n in digits
// when n has no word.
func DayCountWord(n int) string {
	if w, ok := dayCountWords[n]; ok {
		return w
	}
	return strconv.Itoa(n)
}

// FormatTemperature renders t in shortest form with the scale suffix, e.g. "17°C" or "66.9°F".
func FormatTemperature(t float64, scale models.Scale) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + scale.Suffix()
}

// Presenter writes weather reports
type Presenter struct {
	out   io.Writer
	style Styler
	upper cases.Caser
}

func NewPresenter(out io.Writer, style Styler) *Presenter {
	return &Presenter{
		out:   out,
		style: style,
		upper: cases.Upper(language.Und),
	}
}

// Render writes the header followed by either the current conditions or the
// forecast, depending on whether resp carries a forecast.
func (p *Presenter) Render(resp *models.WeatherResponse, scale models.Scale) error {
	var buf bytes.Buffer

	p.header(&buf)

	temp := FormatTemperature(resp.Current.Temperature(scale), scale)
	if resp.Forecast != nil {
		p.forecast(&buf, resp, temp, scale)
	} else {
		p.today(&buf, resp, temp)
	}

	_, err := p.out.Write(buf.Bytes())
	return err
}

func (p *Presenter) header(w io.Writer) {
	fmt.Fprintf(w, "%s WEATHER PROGRAM %s\n",
		p.style.Inverse("\n ********************* \n * "),
		p.style.Inverse(" * \n ********************* "))
}

func (p *Presenter) today(w io.Writer, resp *models.WeatherResponse, temp string) {
	loc := resp.Location
	fmt.Fprintf(w, "\nIt is now %s in %s\n",
		p.style.Green(temp),
		p.style.Yellow(loc.Name+", "+loc.Country))
	fmt.Fprintf(w, "The current weather conditions are: %s\n\n",
		p.style.Rainbow(strconv.Quote(resp.Current.Condition.Text)))
}

func (p *Presenter) forecast(w io.Writer, resp *models.WeatherResponse, temp string, scale models.Scale) {
	loc := resp.Location
	days := resp.Forecast.ForecastDay

	fmt.Fprintf(w, "\nIn %s the current temperature is: %s\n",
		p.style.Green(loc.Name),
		p.style.Yellow(temp))
	fmt.Fprintf(w, "\n%s%s%s\n\n",
		p.style.Blue("* THE WEATHER FORECAST FOR "),
		p.style.Green(p.upper.String(loc.Name+", "+loc.Country)),
		p.style.Blue(fmt.Sprintf(" FOR THE NEXT %s DAYS *", DayCountWord(len(days)))))

	for _, day := range days {
		p.forecastDay(w, day, scale)
	}
}

func (p *Presenter) forecastDay(w io.Writer, day models.ForecastDay, scale models.Scale) {
	fmt.Fprintf(w, "Day: %s\n", p.style.Red(day.Date))
	fmt.Fprintf(w, "Average Temperature: %s\n", p.style.Yellow(FormatTemperature(day.Day.AvgTemperature(scale), scale)))
	fmt.Fprintf(w, "Weather Conditions: %s\n", p.style.Yellow(day.Day.Condition.Text))
	fmt.Fprintf(w, "Sunrise: %s\n", p.style.Yellow(day.Astro.Sunrise))
	fmt.Fprintf(w, "Sunset: %s\n\n", p.style.Yellow(day.Astro.Sunset))
}
