package picker_test

import (
	"fmt"
	"time"

	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/picker"
)

// ExamplePicker demonstrates a two-click selection across a weekend
func ExamplePicker() {
	p := picker.New(picker.Options{
		Now: func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
		OnChange: func(weekdays, weekends []string) {
			fmt.Println("weekdays:", weekdays)
			fmt.Println("weekends:", weekends)
		},
	})

	p.Click(calendar.MustParse("2024-06-07"))
	p.Click(calendar.MustParse("2024-06-08")) // Saturday, ignored
	p.Click(calendar.MustParse("2024-06-10"))

	fmt.Println("phase:", p.Phase())

	// Output:
	// weekdays: [2024-06-07 2024-06-10]
	// weekends: [2024-06-08 2024-06-09]
	// phase: complete
}

// ExamplePicker_ChangeMonth demonstrates year roll-over while navigating
func ExamplePicker_ChangeMonth() {
	p := picker.New(picker.Options{
		Now: func() time.Time { return time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC) },
	})

	p.ChangeMonth(1)
	fmt.Println(p.Cursor())

	// Output:
	// 1/2025
}
