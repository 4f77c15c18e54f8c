package models

import "time"

type LegalStatus string

const (
	LegalValid     LegalStatus = "Vigente"
	LegalStolen    LegalStatus = "Robado"
	LegalSeized    LegalStatus = "Secuestrado"
	LegalInProcess LegalStatus = "En proceso"
)

type Owner struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}

type VehicleEvent struct {
	Date        time.Time `json:"date"`
	Event       string    `json:"event"`
	Description string    `json:"description"`
}

type Vehicle struct {
	Plate            string         `json:"plate"`
	Make             string         `json:"make"`
	Model            string         `json:"model"`
	Year             int            `json:"year"`
	Color            string         `json:"color"`
	Type             string         `json:"type"`
	Owner            Owner          `json:"owner"`
	Status           LegalStatus    `json:"status"`
	LastVerification time.Time      `json:"last_verification"`
	ActiveServices   []string       `json:"active_services"`
	History          []VehicleEvent `json:"history"`
}
