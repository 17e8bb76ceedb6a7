package zones

import "github.com/parthdave/couriersim/internal/models"

var defaultCustomers = []models.Customer{
	{Name: "Aditya", Zone: "Satellite", Address: "Near Jodhpur Cross Road, Satellite, Ahmedabad - 380015"},
	{Name: "Vivaan", Zone: "Bopal", Address: "Near Bopal Cross Road, Bopal, Ahmedabad - 380058"},
	{Name: "Aarav", Zone: "Vastrapur", Address: "Near Vastrapur Lake, Vastrapur, Ahmedabad - 380015"},
	{Name: "Meera", Zone: "Paldi", Address: "Opposite Dharnidhar Derasar, Paldi, Ahmedabad - 380007"},
	{Name: "Diya", Zone: "Thaltej", Address: "Near Thaltej Cross Road, S.G. Highway, Ahmedabad - 380054"},
	{Name: "Riya", Zone: "Navrangpura", Address: "Near Navrangpura AMTS Bus Stop, Navrangpura, Ahmedabad - 380009"},
	{Name: "Ananya", Zone: "Bodakdev", Address: "Opposite Rajpath Club, Bodakdev, Ahmedabad - 380054"},
	{Name: "Aryan", Zone: "Gota", Address: "Near Oganaj Gam, Gota, Ahmedabad - 382481"},
	{Name: "Ishaan", Zone: "Maninagar", Address: "Opposite Rambaug Police Station, Maninagar, Ahmedabad - 380008"},
	{Name: "Kabir", Zone: "Chandkheda", Address: "Near Chandkheda Gam Bus Stop, Chandkheda, Ahmedabad - 382424"},
}

// Pairwise driving distances between zones. One direction per pair; Lookup
// tries both orderings.
var defaultDistances = map[zonePair]models.DistanceEntry{
	{"Satellite", "Bopal"}:        {DistanceKm: 7.5, DurationMin: 15},
	{"Satellite", "Vastrapur"}:    {DistanceKm: 3.2, DurationMin: 10},
	{"Satellite", "Paldi"}:        {DistanceKm: 6.1, DurationMin: 12},
	{"Satellite", "Thaltej"}:      {DistanceKm: 5.3, DurationMin: 11},
	{"Satellite", "Navrangpura"}:  {DistanceKm: 4.8, DurationMin: 14},
	{"Satellite", "Bodakdev"}:     {DistanceKm: 4.1, DurationMin: 9},
	{"Satellite", "Gota"}:         {DistanceKm: 10.2, DurationMin: 22},
	{"Satellite", "Maninagar"}:    {DistanceKm: 12.5, DurationMin: 28},
	{"Satellite", "Chandkheda"}:   {DistanceKm: 14.0, DurationMin: 30},
	{"Bopal", "Vastrapur"}:        {DistanceKm: 8.3, DurationMin: 18},
	{"Bopal", "Paldi"}:            {DistanceKm: 9.5, DurationMin: 20},
	{"Bopal", "Thaltej"}:          {DistanceKm: 6.7, DurationMin: 14},
	{"Bopal", "Navrangpura"}:      {DistanceKm: 9.0, DurationMin: 19},
	{"Bopal", "Bodakdev"}:         {DistanceKm: 7.2, DurationMin: 16},
	{"Bopal", "Gota"}:             {DistanceKm: 8.8, DurationMin: 19},
	{"Bopal", "Maninagar"}:        {DistanceKm: 15.3, DurationMin: 35},
	{"Bopal", "Chandkheda"}:       {DistanceKm: 17.2, DurationMin: 40},
	{"Vastrapur", "Paldi"}:        {DistanceKm: 5.4, DurationMin: 11},
	{"Vastrapur", "Thaltej"}:      {DistanceKm: 4.2, DurationMin: 9},
	{"Vastrapur", "Navrangpura"}:  {DistanceKm: 3.1, DurationMin: 7},
	{"Vastrapur", "Bodakdev"}:     {DistanceKm: 2.5, DurationMin: 6},
	{"Vastrapur", "Gota"}:         {DistanceKm: 9.3, DurationMin: 20},
	{"Vastrapur", "Maninagar"}:    {DistanceKm: 11.2, DurationMin: 25},
	{"Vastrapur", "Chandkheda"}:   {DistanceKm: 13.5, DurationMin: 30},
	{"Paldi", "Thaltej"}:          {DistanceKm: 8.3, DurationMin: 18},
	{"Paldi", "Navrangpura"}:      {DistanceKm: 4.2, DurationMin: 9},
	{"Paldi", "Bodakdev"}:         {DistanceKm: 7.4, DurationMin: 15},
	{"Paldi", "Gota"}:             {DistanceKm: 12.5, DurationMin: 25},
	{"Paldi", "Maninagar"}:        {DistanceKm: 6.3, DurationMin: 14},
	{"Paldi", "Chandkheda"}:       {DistanceKm: 15.1, DurationMin: 35},
	{"Thaltej", "Navrangpura"}:    {DistanceKm: 5.5, DurationMin: 12},
	{"Thaltej", "Bodakdev"}:       {DistanceKm: 2.8, DurationMin: 6},
	{"Thaltej", "Gota"}:           {DistanceKm: 6.1, DurationMin: 13},
	{"Thaltej", "Maninagar"}:      {DistanceKm: 14.2, DurationMin: 30},
	{"Thaltej", "Chandkheda"}:     {DistanceKm: 11.3, DurationMin: 24},
	{"Navrangpura", "Bodakdev"}:   {DistanceKm: 4.6, DurationMin: 10},
	{"Navrangpura", "Gota"}:       {DistanceKm: 10.8, DurationMin: 22},
	{"Navrangpura", "Maninagar"}:  {DistanceKm: 8.5, DurationMin: 18},
	{"Navrangpura", "Chandkheda"}: {DistanceKm: 11.2, DurationMin: 25},
	{"Bodakdev", "Gota"}:          {DistanceKm: 7.5, DurationMin: 16},
	{"Bodakdev", "Maninagar"}:     {DistanceKm: 13.1, DurationMin: 28},
	{"Bodakdev", "Chandkheda"}:    {DistanceKm: 12.3, DurationMin: 26},
	{"Gota", "Maninagar"}:         {DistanceKm: 18.5, DurationMin: 40},
	{"Gota", "Chandkheda"}:        {DistanceKm: 9.2, DurationMin: 20},
	{"Maninagar", "Chandkheda"}:   {DistanceKm: 19.6, DurationMin: 45},
}
