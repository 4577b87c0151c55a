package entity

type Availability struct {
	Date           string `bson:"date" json:"date"`
	RoomsAvailable int    `bson:"roomsAvailable" json:"roomsAvailable"`
}

type Hotel struct {
	Id            int64          `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Location      string         `bson:"location" json:"location"`
	PricePerNight float64        `bson:"pricePerNight" json:"pricePerNight"`
	Availability  []Availability `bson:"availability" json:"availability"`
	Amenities     []string       `bson:"amenities" json:"amenities"`
	ImageUrl      string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedBy     int64          `bson:"createdBy" json:"createdBy"`
}

type Favorite struct {
	UserId    int64  `json:"userId"`
	HotelId   int64  `json:"hotelId"`
	HotelName string `json:"hotelName"`
}

type AddFavoriteRequest struct {
	HotelId int64 `json:"hotelId" validate:"required,gt=0"`
}

// HotelIndexFilter narrows a hotel listing. Zero values do not filter.
type HotelIndexFilter struct {
	Search   string
	Location string
	MinPrice float64
	MaxPrice float64
}

// DefaultInquiry is sent when a traveler contacts a hotel without a text.
const DefaultInquiry = "Interested in this hotel. Please provide more details."

type HotelInquiryRequest struct {
	Content string `json:"content" validate:"max=4000"`
}
