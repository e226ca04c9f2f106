package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mcoot/pickleball-finder/internal/api/response"
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

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
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

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.AuthResponse:
		o.printAuthResult(v)
	case response.SearchResponse:
		o.printSearch(v)
	case response.Privacy:
		o.printPrivacy(v)
	case response.Notification:
		o.printNotification(v)
	case response.NotificationPage:
		o.printNotificationPage(v)
	case response.HealthResponse:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	printField("Skill", p.SkillLevel)
	printField("Location", p.Location)
	printField("Email", p.Email)
	printField("Phone", p.Phone)
	printField("Bio", p.Bio)
	printField("Photo", p.PhotoURL)
	if len(p.Availability) > 0 {
		fmt.Printf("Availability: %s\n", strings.Join(p.Availability, ", "))
	}
	if !p.LastActive.IsZero() {
		fmt.Printf("Last active: %s\n", p.LastActive.Local().Format(time.DateTime))
	}
	if p.Privacy != nil {
		o.printPrivacy(*p.Privacy)
	}
}

func (o *Output) printAuthResult(a response.AuthResponse) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printSearch(s response.SearchResponse) {
	fmt.Printf("Found %d players\n", s.Count)
	for _, p := range s.Players {
		line := fmt.Sprintf("  - %s (%s)", p.Name, p.ID)
		if p.SkillLevel != "" {
			line += " skill " + p.SkillLevel
		}
		if p.Location != "" {
			line += ", " + p.Location
		}
		if !p.AllowContact {
			line += " [no contact]"
		}
		fmt.Println(line)
	}
}

func (o *Output) printPrivacy(p response.Privacy) {
	fmt.Println("Privacy:")
	fmt.Printf("  Visible: %s\n", yesNo(p.IsVisible))
	fmt.Printf("  Show email: %s\n", yesNo(p.ShowEmail))
	fmt.Printf("  Show phone: %s\n", yesNo(p.ShowPhone))
	fmt.Printf("  Show location: %s\n", yesNo(p.ShowLocation))
	fmt.Printf("  Allow contact: %s\n", yesNo(p.AllowContact))
}

func (o *Output) printNotification(n response.Notification) {
	status := "new"
	if n.Read {
		status = "read"
	}
	fmt.Printf("[%s] %s %s from %s (%s)\n", n.ID, n.Timestamp.Local().Format(time.DateTime), status, n.From.Name, n.From.PlayerID)
	fmt.Printf("  %s\n", n.Message)
}

func (o *Output) printNotificationPage(p response.NotificationPage) {
	fmt.Printf("Messages %d-%d of %d (%d unread)\n", min(p.Offset+1, p.Total), p.Offset+len(p.Notifications), p.Total, p.Unread)
	for _, n := range p.Notifications {
		o.printNotification(n)
	}
}

func (o *Output) printHealthResult(h response.HealthResponse) {
	fmt.Printf("Status: %s\n", h.Status)
	printField("Storage", h.Storage)
}

func printField(label, value string) {
	if value != "" {
		fmt.Printf("%s: %s\n", label, value)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
