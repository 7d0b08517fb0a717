package models

// InjuryTypeCount - число отчетов по типу травмы
type InjuryTypeCount struct {
	InjuryTypeID string `json:"_id"`
	Count        int    `json:"count"`
}

// WeekdayCount - число травм по дню недели (1 - воскресенье ... 7 - суббота)
type WeekdayCount struct {
	Day   int `json:"_id"`
	Count int `json:"count"`
}

// DateCount - число травм за календарный день (YYYY-MM-DD)
type DateCount struct {
	Date  string `json:"_id"`
	Count int    `json:"count"`
}
