package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case Identity:
		o.printIdentity(v)
	case Pin:
		o.printPin(v)
	case []Pin:
		o.printPins(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the minimal payload returned on login
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Pin response type
type Pin struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Rating    int       `json:"rating"`
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Created: %s\n", u.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printIdentity(i Identity) {
	fmt.Printf("Logged in as %s (%s)\n", i.Username, i.ID)
}

func (o *Output) printPin(p Pin) {
	stars := ""
	for i := 0; i < p.Rating; i++ {
		stars += "*"
	}
	fmt.Printf("%s (%s)\n", p.Title, p.ID)
	fmt.Printf("  by %s at %.4f, %.4f\n", p.Username, p.Lat, p.Long)
	if p.Desc != "" {
		fmt.Printf("  %s\n", p.Desc)
	}
	if stars != "" {
		fmt.Printf("  rating: %s\n", stars)
	}
	fmt.Printf("  created: %s\n", p.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printPins(pins []Pin) {
	if len(pins) == 0 {
		fmt.Println("No pins yet.")
		return
	}
	fmt.Printf("Pins (%d):\n", len(pins))
	for _, p := range pins {
		o.printPin(p)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
