package types

// Requirements is the structured form of a free-text trip request.
// Every field may be absent; nil means "the user never said".
type Requirements struct {
	Destination   *string  `json:"destination,omitempty"`
	DepartureCity *string  `json:"departure_city,omitempty"`
	DepartureDate *string  `json:"departure_date,omitempty"` // YYYY-MM-DD
	ReturnDate    *string  `json:"return_date,omitempty"`
	CheckinDate   *string  `json:"checkin_date,omitempty"`
	CheckoutDate  *string  `json:"checkout_date,omitempty"`
	Travelers     *int     `json:"travelers,omitempty"`
	TotalBudget   *float64 `json:"total_budget,omitempty"`
	BudgetPerHead *float64 `json:"budget_per_person,omitempty"`
	Preferences   []string `json:"activity_preferences,omitempty"` // culture|food|adventure|relaxation
	DurationDays  *int     `json:"trip_duration_days,omitempty"`
}

// ResolvedRequirements is Requirements after the single defaulting pass at the
// state-machine boundary. No optionals left: stages read these blindly.
type ResolvedRequirements struct {
	Destination   string   `json:"destination"`
	DepartureCity string   `json:"departure_city"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date"`
	CheckinDate   string   `json:"checkin_date"`
	CheckoutDate  string   `json:"checkout_date"`
	Travelers     int      `json:"travelers"`
	TotalBudget   float64  `json:"total_budget"`
	BudgetPerHead float64  `json:"budget_per_person"`
	Preferences   []string `json:"activity_preferences"`
	DurationDays  int      `json:"trip_duration_days"`
}

type Flight struct {
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"` // ISO-8601, e.g. PT8H30M
	Stops         int     `json:"stops"`
	Rating        float64 `json:"rating"` // 0..5
	BookingToken  string  `json:"booking_token"`
}

type Hotel struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`       // 0..5 canonical
	ReviewScore   float64  `json:"review_score"` // raw 0..10 where the source has one
	PricePerNight float64  `json:"price_per_night"`
	TotalCost     float64  `json:"total_cost"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	Category      string   `json:"category"` // budget|mid-range|luxury
	BookingURL    string   `json:"booking_url"`
	HotelID       string   `json:"hotel_id"`
}

type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"` // 0..5
	Location    string  `json:"location"`
	Website     string  `json:"website"`
	ActivityID  string  `json:"activity_id"`
}

type DestinationInfo struct {
	Country         string   `json:"country"`
	Currency        string   `json:"currency"`
	Language        string   `json:"language"`
	Timezone        string   `json:"timezone"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	AvgTemperature  string   `json:"average_temperature"`
	Districts       []string `json:"popular_districts"`
	Transportation  []string `json:"transportation"`
	EmergencyNumber string   `json:"emergency_number"`
}

// CostBreakdown is the per-person cost split of an optimized selection.
type CostBreakdown struct {
	Flight    float64 `json:"flight"`
	Hotel     float64 `json:"hotel"`
	Activity  float64 `json:"activities"`
	MealsMisc float64 `json:"meals_misc"`
}

type OptimizationResult struct {
	Flight          *Flight       `json:"selected_flight"`
	Hotel           *Hotel        `json:"selected_hotel"`
	Activities      []Activity    `json:"selected_activities"`
	TotalCost       float64       `json:"total_cost"`
	BudgetRemaining float64       `json:"budget_remaining"`
	Breakdown       CostBreakdown `json:"cost_breakdown"`
	BudgetStatus    string        `json:"budget_status"` // within_budget|over_budget
	Recommendations []string      `json:"recommendations"`
	FlightSavings   float64       `json:"flight_savings"`
	HotelSavings    float64       `json:"hotel_savings"`
}

// Slot is one scheduled entry inside an itinerary day.
type Slot struct {
	Time        string  `json:"time"`
	Title       string  `json:"activity"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Duration    string  `json:"duration"`
}

type Day struct {
	Date       string  `json:"date"`
	DayNumber  int     `json:"day_number"`
	Title      string  `json:"title"`
	Slots      []Slot  `json:"activities"`
	DailyTotal float64 `json:"daily_total"`
}

type BookingSummary struct {
	Airline        string  `json:"airline"`
	FlightPrice    float64 `json:"flight_price"`
	BookingToken   string  `json:"booking_token"`
	HotelName      string  `json:"hotel_name"`
	HotelTotal     float64 `json:"hotel_total"`
	HotelURL       string  `json:"hotel_url"`
	ActivityCount  int     `json:"activities_count"`
	ActivitiesCost float64 `json:"activities_cost"`
}

type Itinerary struct {
	Destination string         `json:"destination"`
	Days        []Day          `json:"days"`
	TotalDays   int            `json:"total_days"`
	TotalCost   float64        `json:"total_cost"`
	Booking     BookingSummary `json:"booking_summary"`
}

// PlanningState is the single aggregate threaded through the pipeline.
// One instance per run; stages fill their own fields and never anyone else's.
type PlanningState struct {
	RawRequest string

	Requirements *ResolvedRequirements
	Extracted    Requirements // pre-default view, kept for the report

	DestInfo *DestinationInfo

	Flights    []Flight
	Hotels     []Hotel
	Activities []Activity

	Optimization         *OptimizationResult
	OptimizationComplete bool

	Itinerary     *Itinerary
	FinalResponse string

	ErrorOccurred      bool
	StageError         string
	ProcessingComplete bool
}
