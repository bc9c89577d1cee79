package message

import (
	"strings"
	"testing"
	"time"

	"github.com/tfkdiscgolf/metrix-announcer/internal/event"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "saturday morning",
			t:    time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
			want: "Lørdag 15. mars 2025 kl. 10:00",
		},
		{
			name: "single-digit day is zero-padded",
			t:    time.Date(2025, time.May, 7, 17, 30, 0, 0, time.UTC),
			want: "Onsdag 07. mai 2025 kl. 17:30",
		},
		{
			name: "sunday in december",
			t:    time.Date(2025, time.December, 7, 9, 5, 0, 0, time.UTC),
			want: "Søndag 07. desember 2025 kl. 09:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTime(tt.t); got != tt.want {
				t.Errorf("FormatDateTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAnnouncement(t *testing.T) {
	d := &event.Detail{
		Title:       "Runde 2 - TFK Seriespill 2025",
		StartTime:   time.Date(2025, time.April, 30, 17, 30, 0, 0, time.UTC),
		URL:         "https://discgolfmetrix.com/3272826",
		CourseID:    23150,
		CourseName:  "Charlottenlund Diskgolfbane",
		LayoutName:  "Hovedlayout 18 hull",
		CourseFull:  "Charlottenlund Diskgolfbane – Hovedlayout 18 hull",
		Description: "Velkommen til runde 2!",
	}

	want := "📣 Neste runde i TFK Seriespill nærmer seg!\n\n" +
		"🏆 Runde 2 - TFK Seriespill 2025\n" +
		"📅 Onsdag 30. april 2025 kl. 17:30\n" +
		"⛳ Charlottenlund Diskgolfbane\n" +
		"🗺️ Layout: Hovedlayout 18 hull\n\n" +
		"ℹ️ Velkommen til runde 2!\n\n" +
		"🔗 Mer info og påmelding: https://discgolfmetrix.com/3272826"

	if got := FormatAnnouncement(d); got != want {
		t.Errorf("FormatAnnouncement() =\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatAnnouncement_DescriptionTruncation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantPart    string
		wantNoDots  bool
	}{
		{
			name:        "exactly 250 runes renders first 200 plus ellipsis",
			description: strings.Repeat("æ", 250),
			wantPart:    "ℹ️ " + strings.Repeat("æ", 200) + "...\n",
		},
		{
			name:        "150 runes renders unchanged",
			description: strings.Repeat("ø", 150),
			wantPart:    "ℹ️ " + strings.Repeat("ø", 150) + "\n",
			wantNoDots:  true,
		},
		{
			name:        "exactly 200 runes renders unchanged",
			description: strings.Repeat("å", 200),
			wantPart:    "ℹ️ " + strings.Repeat("å", 200) + "\n",
			wantNoDots:  true,
		},
		{
			name:        "empty description is safe",
			description: "",
			wantPart:    "ℹ️ \n",
			wantNoDots:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &event.Detail{
				Title:       "Runde",
				StartTime:   time.Date(2025, time.April, 30, 17, 30, 0, 0, time.UTC),
				CourseName:  event.UnknownCourse,
				LayoutName:  event.UnknownCourse,
				CourseFull:  event.UnknownCourse,
				Description: tt.description,
				URL:         "https://discgolfmetrix.com/1",
			}

			got := FormatAnnouncement(d)
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("message missing expected description section:\n%q", got)
			}
			if tt.wantNoDots && strings.Contains(got, "...") {
				t.Errorf("message should not contain an ellipsis:\n%q", got)
			}
		})
	}
}
