package models

import "time"

// SmokingProfile is the user's single current smoking-habit profile
type SmokingProfile struct {
	Name              string   `json:"name"`
	CigarettesPerDay  int      `json:"cigarettesPerDay"`  // cigarettes smoked on a typical day before quitting
	PricePerPack      float64  `json:"pricePerPack"`      // price of one pack in Currency
	CigarettesPerPack int      `json:"cigarettesPerPack"` // must be > 0, used as a divisor
	SmokingYears      float64  `json:"smokingYears"`
	Goals             []string `json:"goals"`
	Currency          string   `json:"currency,omitempty"` // display symbol, e.g. "₺"
}

// QuitRecord marks the moment the user quit
type QuitRecord struct {
	QuitTimestamp time.Time `json:"quitTimestamp"`
}

// DailyLog is one user-entered check-in for a calendar day
type DailyLog struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Cravings  int       `json:"cravings"`
	Mood      int       `json:"mood"` // 1..5
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
