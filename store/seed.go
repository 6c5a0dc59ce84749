package store

import "github.com/arunvm123/eventbooking-demo/model"

const pexelsParams = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

// DefaultEvents is the catalogue written on first start when no events are
// stored yet. Their bookedSeats stand for sales made before this service
// kept bookings, so they have no matching Booking records.
func DefaultEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Title:       "Tech Conference 2025",
			Date:        "2025-06-15",
			Time:        "09:00 AM",
			Location:    "Convention Center, San Francisco",
			TotalSeats:  200,
			BookedSeats: 45,
			ImageURL:    "https://images.pexels.com/photos/2833037/pexels-photo-2833037.jpeg" + pexelsParams,
		},
		{
			ID:          "2",
			Title:       "Music Festival",
			Date:        "2025-07-22",
			Time:        "04:00 PM",
			Location:    "Central Park, New York",
			TotalSeats:  500,
			BookedSeats: 320,
			ImageURL:    "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg" + pexelsParams,
		},
		{
			ID:          "3",
			Title:       "Business Workshop",
			Date:        "2025-06-28",
			Time:        "10:00 AM",
			Location:    "Business Hub, Chicago",
			TotalSeats:  75,
			BookedSeats: 65,
			ImageURL:    "https://images.pexels.com/photos/1181396/pexels-photo-1181396.jpeg" + pexelsParams,
		},
		{
			ID:          "4",
			Title:       "Art Exhibition",
			Date:        "2025-08-10",
			Time:        "11:00 AM",
			Location:    "Art Gallery, Los Angeles",
			TotalSeats:  120,
			BookedSeats: 40,
			ImageURL:    "https://images.pexels.com/photos/1509534/pexels-photo-1509534.jpeg" + pexelsParams,
		},
	}
}
