// internal/plan/plan.go
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/RaczoOBY/bible-app/internal/model"
)

// Document is the typed shape of the plan file (plano-leitura.json). The JSON
// keys follow the plan document format, which predates this service.
type Document struct {
	Metadata     Metadata         `json:"metadata"`
	Gamification Gamification     `json:"gamificacao"`
	Levels       []Level          `json:"niveis"`
	Achievements []AchievementDef `json:"conquistas"`
	Months       []Month          `json:"meses"`
}

type Metadata struct {
	Name           string `json:"nome"`
	Version        string `json:"versao"`
	TotalDays      int    `json:"totalDias"`
	DaysPerMonth   int    `json:"diasPorMes"`
	ReadingsPerDay int    `json:"leiturasPorDia"`
}

type Gamification struct {
	XPPerReading    int                `json:"xpPorLeitura"`
	XPDayComplete   int                `json:"xpDiaCompleto"`
	Multipliers     map[string]float64 `json:"multiplicadores"`
}

type Level struct {
	Level int    `json:"nivel"`
	Name  string `json:"nome"`
	XPMin int    `json:"xpMin"`
	XPMax int    `json:"xpMax"`
	Icon  string `json:"icone"`
}

type AchievementDef struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Desc string `json:"desc"`
	XP   int    `json:"xp"`
	Icon string `json:"icone"`
}

type Month struct {
	ID      int       `json:"id"`
	Name    string    `json:"nome"`
	Books   SlotNames `json:"livros"`
	Abbrevs SlotNames `json:"abrev"`
	Days    []Day     `json:"dias"`
}

type SlotNames struct {
	NT1 string `json:"nt1"`
	NT2 string `json:"nt2"`
	AT1 string `json:"at1"`
	AT2 string `json:"at2"`
}

type Day struct {
	D   int    `json:"d"`
	NT1 string `json:"nt1"`
	NT2 string `json:"nt2"`
	AT1 string `json:"at1"`
	AT2 string `json:"at2"`
}

// Assignment is one of the four readings of a plan-day.
type Assignment struct {
	Slot      model.Slot
	Book      string
	Abbrev    string
	Reference string
}

// Catalog is the immutable, validated reading plan. It is loaded once at
// startup and injected into every component that consumes plan data.
type Catalog struct {
	doc    *Document
	months map[int]*Month
	days   map[int]map[int]*Day
}

// Load reads and validates the plan document from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan file %s: %w", path, err)
	}
	return New(&doc)
}

// New validates the document and builds the lookup indexes.
func New(doc *Document) (*Catalog, error) {
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("invalid plan document: %w", err)
	}

	c := &Catalog{
		doc:    doc,
		months: make(map[int]*Month, len(doc.Months)),
		days:   make(map[int]map[int]*Day, len(doc.Months)),
	}
	for i := range doc.Months {
		m := &doc.Months[i]
		c.months[m.ID] = m
		byDay := make(map[int]*Day, len(m.Days))
		for j := range m.Days {
			byDay[m.Days[j].D] = &m.Days[j]
		}
		c.days[m.ID] = byDay
	}
	return c, nil
}

func validate(doc *Document) error {
	if doc.Metadata.DaysPerMonth <= 0 {
		return fmt.Errorf("metadata.diasPorMes must be positive, got %d", doc.Metadata.DaysPerMonth)
	}
	if len(doc.Months) == 0 {
		return fmt.Errorf("plan has no months")
	}
	if doc.Gamification.XPPerReading <= 0 || doc.Gamification.XPDayComplete <= 0 {
		return fmt.Errorf("gamificacao xp values must be positive")
	}
	for _, tier := range []string{"3", "7", "14", "30"} {
		if _, ok := doc.Gamification.Multipliers[tier]; !ok {
			return fmt.Errorf("gamificacao.multiplicadores missing tier %q", tier)
		}
	}

	if len(doc.Levels) == 0 {
		return fmt.Errorf("plan has no levels")
	}
	if doc.Levels[0].XPMin != 0 {
		return fmt.Errorf("first level must start at xpMin 0, got %d", doc.Levels[0].XPMin)
	}
	for i, lvl := range doc.Levels {
		if lvl.XPMax < lvl.XPMin {
			return fmt.Errorf("level %d has xpMax %d below xpMin %d", lvl.Level, lvl.XPMax, lvl.XPMin)
		}
		if i > 0 && lvl.XPMin != doc.Levels[i-1].XPMax+1 {
			return fmt.Errorf("level table not contiguous at level %d: xpMin %d, previous xpMax %d",
				lvl.Level, lvl.XPMin, doc.Levels[i-1].XPMax)
		}
	}

	seenMonths := make(map[int]bool)
	for _, m := range doc.Months {
		if m.ID < 1 || m.ID > 12 {
			return fmt.Errorf("month id %d out of range 1..12", m.ID)
		}
		if seenMonths[m.ID] {
			return fmt.Errorf("duplicate month id %d", m.ID)
		}
		seenMonths[m.ID] = true

		if len(m.Days) != doc.Metadata.DaysPerMonth {
			return fmt.Errorf("month %d has %d days, expected %d", m.ID, len(m.Days), doc.Metadata.DaysPerMonth)
		}
		seenDays := make(map[int]bool, len(m.Days))
		for _, d := range m.Days {
			if d.D < 1 || d.D > doc.Metadata.DaysPerMonth {
				return fmt.Errorf("month %d has day number %d out of range 1..%d", m.ID, d.D, doc.Metadata.DaysPerMonth)
			}
			if seenDays[d.D] {
				return fmt.Errorf("month %d has duplicate day %d", m.ID, d.D)
			}
			seenDays[d.D] = true
			if d.NT1 == "" || d.NT2 == "" || d.AT1 == "" || d.AT2 == "" {
				return fmt.Errorf("month %d day %d has an empty reading reference", m.ID, d.D)
			}
		}
	}
	return nil
}

// ReadingsForDay returns the four reading assignments of a plan-day, or
// model.ErrNotFound when the (month, day) pair is outside the plan.
func (c *Catalog) ReadingsForDay(month, day int) ([]Assignment, error) {
	m, ok := c.months[month]
	if !ok {
		return nil, fmt.Errorf("plan has no month %d: %w", month, model.ErrNotFound)
	}
	d, ok := c.days[month][day]
	if !ok {
		return nil, fmt.Errorf("plan month %d has no day %d: %w", month, day, model.ErrNotFound)
	}
	return []Assignment{
		{Slot: model.SlotNT1, Book: m.Books.NT1, Abbrev: m.Abbrevs.NT1, Reference: d.NT1},
		{Slot: model.SlotNT2, Book: m.Books.NT2, Abbrev: m.Abbrevs.NT2, Reference: d.NT2},
		{Slot: model.SlotAT1, Book: m.Books.AT1, Abbrev: m.Abbrevs.AT1, Reference: d.AT1},
		{Slot: model.SlotAT2, Book: m.Books.AT2, Abbrev: m.Abbrevs.AT2, Reference: d.AT2},
	}, nil
}

// DaysPerPlanMonth is the fixed number of plan-days per month (25). Callers
// must use this instead of hardcoding the constant.
func (c *Catalog) DaysPerPlanMonth() int {
	return c.doc.Metadata.DaysPerMonth
}

// TotalDays is the number of plan-days in the whole plan.
func (c *Catalog) TotalDays() int {
	return c.doc.Metadata.TotalDays
}

// MarginForCalendarMonth is the forgiveness buffer of a month: calendar days
// minus plan days. With 25 plan-days it is at least 3 for every Gregorian
// month (February non-leap has 28 days).
func (c *Catalog) MarginForCalendarMonth(month, year int) int {
	// Day 0 of the following month is the last day of this one.
	calendarDays := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return calendarDays - c.doc.Metadata.DaysPerMonth
}

// Month returns a month definition by id.
func (c *Catalog) Month(id int) (*Month, bool) {
	m, ok := c.months[id]
	return m, ok
}

// Months returns all month definitions in document order.
func (c *Catalog) Months() []Month {
	return c.doc.Months
}

// Levels returns the ordered level table.
func (c *Catalog) Levels() []Level {
	return c.doc.Levels
}

// Gamification returns the XP constants and streak multipliers.
func (c *Catalog) Gamification() Gamification {
	return c.doc.Gamification
}

// AchievementDefs returns the static achievement catalog.
func (c *Catalog) AchievementDefs() []AchievementDef {
	return c.doc.Achievements
}

// AchievementDef looks up one achievement definition by id.
func (c *Catalog) AchievementDef(id string) (AchievementDef, bool) {
	for _, a := range c.doc.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDef{}, false
}
