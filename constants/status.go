package constants

// Booking status
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Hotel and room approval status
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// User role
const (
	RoleGuest = "guest"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// Hotel categories
var HotelCategories = []string{"Premium", "Eco-Friendly", "Ski Resort", "Historic", "Boutique"}

// MaxRoomPrice is the highest nightly rate a room can be listed at
const MaxRoomPrice = 100_000_000

// Placeholder media assigned to newly created listings
const (
	PlaceholderCoverImage = "https://placehold.co/1200x800.png"
	PlaceholderRoomImage  = "https://placehold.co/600x400.png"
	PlaceholderRoomImages = 3
)

// Booking event types broadcast over the websocket hub
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingArrival   = "booking.arrival"
)
