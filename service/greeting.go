package service

import "fmt"

// Greeting picks the salutation from the wall-clock hour: [0,12) morning,
// [12,18) afternoon, otherwise evening.
func Greeting(name string, hour int) string {
	var greeting string
	switch {
	case hour < 12:
		greeting = "Good morning"
	case hour < 18:
		greeting = "Good afternoon"
	default:
		greeting = "Good evening"
	}
	return fmt.Sprintf("%s, %s", greeting, name)
}
