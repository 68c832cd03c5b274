package domain

// Fixed data baked into the running process: the catalog, the gallery,
// the review seed and the business facts. None of it is mutated after
// start; the review seed is copied into whichever repository is wired.

var Menu = []Dish{
	{
		ID:          "1",
		Name:        "Truffle Risotto",
		Description: "Creamy arborio rice with black truffle shavings and parmesan",
		Price:       28,
		Category:    "Mains",
		ImageURL:    "https://images.unsplash.com/photo-1476124369491-f6e5c4f3edd8?w=600&q=80",
		PrepTime:    "25 min",
		Dietary:     []string{"Vegetarian"},
	},
	{
		ID:          "2",
		Name:        "Grilled Salmon",
		Description: "Wild-caught Atlantic salmon with lemon butter sauce and asparagus",
		Price:       32,
		Category:    "Mains",
		ImageURL:    "https://images.unsplash.com/photo-1485921325833-c519f76c4927?w=600&q=80",
		PrepTime:    "20 min",
		Dietary:     []string{"Gluten-Free"},
	},
	{
		ID:          "3",
		Name:        "Caesar Salad",
		Description: "Crisp romaine, house-made croutons, parmesan, classic dressing",
		Price:       14,
		Category:    "Starters",
		ImageURL:    "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=600&q=80",
		PrepTime:    "10 min",
	},
	{
		ID:          "4",
		Name:        "Beef Carpaccio",
		Description: "Thinly sliced prime beef with arugula, capers, and truffle oil",
		Price:       18,
		Category:    "Starters",
		ImageURL:    "https://images.unsplash.com/photo-1544025162-d76694265947?w=600&q=80",
		PrepTime:    "8 min",
	},
	{
		ID:          "5",
		Name:        "Spicy Ramen",
		Description: "Traditional tonkotsu broth with pork belly, soft egg, and vegetables",
		Price:       22,
		Category:    "Mains",
		ImageURL:    "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=600&q=80",
		PrepTime:    "15 min",
		SpiceLevel:  2,
	},
	{
		ID:          "6",
		Name:        "Margherita Pizza",
		Description: "San Marzano tomatoes, fresh mozzarella, basil, extra virgin olive oil",
		Price:       18,
		Category:    "Mains",
		ImageURL:    "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=600&q=80",
		PrepTime:    "18 min",
		Dietary:     []string{"Vegetarian"},
	},
	{
		ID:          "7",
		Name:        "Chocolate Soufflé",
		Description: "Warm Belgian chocolate soufflé with vanilla bean ice cream",
		Price:       14,
		Category:    "Desserts",
		ImageURL:    "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=600&q=80",
		PrepTime:    "20 min",
	},
	{
		ID:          "8",
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with espresso-soaked ladyfingers and mascarpone",
		Price:       12,
		Category:    "Desserts",
		ImageURL:    "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=600&q=80",
		PrepTime:    "5 min",
	},
}

var MenuCategories = []string{"All", "Starters", "Mains", "Desserts"}

var Gallery = []GalleryImage{
	{ID: 1, Src: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80", Alt: "Restaurant interior", Category: "Interior"},
	{ID: 2, Src: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800&q=80", Alt: "Dining area", Category: "Interior"},
	{ID: 3, Src: "https://images.unsplash.com/photo-1476124369491-f6e5c4f3edd8?w=800&q=80", Alt: "Truffle Risotto", Category: "Dishes"},
	{ID: 4, Src: "https://images.unsplash.com/photo-1485921325833-c519f76c4927?w=800&q=80", Alt: "Grilled Salmon", Category: "Dishes"},
	{ID: 5, Src: "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800&q=80", Alt: "Chef at work", Category: "Team"},
	{ID: 6, Src: "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?w=800&q=80", Alt: "Kitchen staff", Category: "Team"},
	{ID: 7, Src: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800&q=80", Alt: "Margherita Pizza", Category: "Dishes"},
	{ID: 8, Src: "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=800&q=80", Alt: "Bar area", Category: "Interior"},
	{ID: 9, Src: "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=800&q=80", Alt: "Chocolate Soufflé", Category: "Dishes"},
}

var GalleryCategories = []string{"All", "Interior", "Dishes", "Team"}

// SeedReviews is ordered most-recent-first, the order the board displays.
var SeedReviews = []Review{
	{
		ID:       "1",
		Name:     "Sarah Johnson",
		Rating:   5,
		Date:     "2 days ago",
		Text:     "Absolutely phenomenal! The truffle risotto was divine, and the service was impeccable. Can't wait to come back!",
		ImageURL: "https://images.unsplash.com/photo-1476124369491-f6e5c4f3edd8?w=400&q=80",
		Helpful:  12,
	},
	{
		ID:      "2",
		Name:    "Michael Chen",
		Rating:  5,
		Date:    "1 week ago",
		Text:    "Best dining experience in the city. The chef's attention to detail is remarkable. Every dish was a work of art.",
		Helpful: 8,
	},
	{
		ID:       "3",
		Name:     "Emma Rodriguez",
		Rating:   4,
		Date:     "2 weeks ago",
		Text:     "Great ambiance and delicious food. The salmon was perfectly cooked. Only minor issue was a slight wait, but worth it!",
		ImageURL: "https://images.unsplash.com/photo-1485921325833-c519f76c4927?w=400&q=80",
		Helpful:  5,
	},
	{
		ID:      "4",
		Name:    "David Thompson",
		Rating:  5,
		Date:    "3 weeks ago",
		Text:    "Celebrated our anniversary here. The staff went above and beyond to make it special. Highly recommend!",
		Helpful: 15,
	},
	{
		ID:      "5",
		Name:    "Lisa Martinez",
		Rating:  5,
		Date:    "1 month ago",
		Text:    "The chocolate soufflé is to die for! Entire meal was exceptional. Will be bringing all my friends here.",
		Helpful: 6,
	},
}

// TimeSlots covers the two service windows in half-hour steps.
var TimeSlots = []string{
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "2:00 PM", "5:00 PM",
	"5:30 PM", "6:00 PM", "6:30 PM", "7:00 PM",
	"7:30 PM", "8:00 PM", "8:30 PM", "9:00 PM",
}

// BookingWindowDays is the number of consecutive calendar days,
// starting today, a table can be booked for.
const BookingWindowDays = 14

var Bistro = BusinessInfo{
	Name:    "The Local Bistro",
	Phone:   "15551234567",
	Email:   "info@localbistro.com",
	Address: "123 Main Street, Downtown, CA",
	Hours: []HoursEntry{
		{Days: "Monday - Thursday", Hours: "11:00 AM - 10:00 PM"},
		{Days: "Friday - Saturday", Hours: "11:00 AM - 11:00 PM"},
		{Days: "Sunday", Hours: "10:00 AM - 9:00 PM"},
	},
	HappyHour: "Happy Hour: Mon-Fri 4-6 PM • 30% off appetizers & drinks",
	MapURL:    "https://maps.google.com/?q=123+Main+Street+Downtown+CA",
}

var Specials = []Special{
	{DishID: "1", Name: "Truffle Risotto", Description: "Creamy arborio rice with black truffle", Price: "$28", ImageURL: "https://images.unsplash.com/photo-1476124369491-f6e5c4f3edd8?w=800&q=80"},
	{DishID: "2", Name: "Grilled Salmon", Description: "Wild-caught with lemon butter sauce", Price: "$32", ImageURL: "https://images.unsplash.com/photo-1485921325833-c519f76c4927?w=800&q=80"},
	{DishID: "7", Name: "Chocolate Soufflé", Description: "Warm Belgian chocolate with vanilla ice cream", Price: "$14", ImageURL: "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=800&q=80"},
}
