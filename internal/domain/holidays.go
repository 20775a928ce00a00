package domain

import "fmt"

// Holiday праздник из фиксированного каталога
type Holiday struct {
	Label string
	Token string // MM-DD
}

// HolidayCatalog каталог стандартных праздников США
// Токены дублироваться не обязаны: произвольная дата, совпавшая с каталожной,
// разрешается в каталожную метку
var HolidayCatalog = []Holiday{
	{Label: "New Year's Day", Token: "01-01"},
	{Label: "Martin Luther King Jr. Day", Token: "01-15"},
	{Label: "Presidents' Day", Token: "02-19"},
	{Label: "Memorial Day", Token: "05-27"},
	{Label: "Independence Day", Token: "07-04"},
	{Label: "Labor Day", Token: "09-02"},
	{Label: "Columbus Day", Token: "10-14"},
	{Label: "Veterans Day", Token: "11-11"},
	{Label: "Thanksgiving Day", Token: "11-28"},
	{Label: "Christmas Day", Token: "12-25"},
}

// HolidayLabel возвращает метку праздника по токену
// Для токена вне каталога синтезируется метка Custom Date (<token>)
func HolidayLabel(token string) string {
	for _, h := range HolidayCatalog {
		if h.Token == token {
			return h.Label
		}
	}
	return fmt.Sprintf("Custom Date (%s)", token)
}
