package http

import "swim-schedule-manager/internal/model"

// sampleEvents is a small schedule used by the development sample endpoint.
func sampleEvents() []model.PracticeEvent {
	return []model.PracticeEvent{
		{Date: "June 3, 2026", Child: "Nastya", Time: "5:00 PM - 8:00 PM", LocationCode: "MW", DryLand: true},
		{Date: "June 3, 2026", Child: "Alisa", Time: "4:00 PM - 5:30 PM", LocationCode: "RC"},
		{Date: "June 4, 2026", Child: "Nastya", Time: "7:00 AM - 8:30 AM", LocationCode: "GN"},
		{Date: "June 5, 2026", Child: "Alisa", Time: "4:00 PM - 5:30 PM", LocationCode: "FH"},
	}
}
