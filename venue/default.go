package venue

// Default returns the built-in table of the 30 NBA arenas. Each call builds
// a fresh Table, so callers never share state through it.
func Default() Table {
	rows := []Venue{
		{Team: "Atlanta Hawks", City: "Atlanta", Lat: 33.757, Lon: -84.396},
		{Team: "Boston Celtics", City: "Boston", Lat: 42.366, Lon: -71.062},
		{Team: "Brooklyn Nets", City: "Brooklyn", Lat: 40.682, Lon: -73.975},
		{Team: "Charlotte Hornets", City: "Charlotte", Lat: 35.225, Lon: -80.839},
		{Team: "Chicago Bulls", City: "Chicago", Lat: 41.880, Lon: -87.674},
		{Team: "Cleveland Cavaliers", City: "Cleveland", Lat: 41.496, Lon: -81.688},
		{Team: "Dallas Mavericks", City: "Dallas", Lat: 32.790, Lon: -96.810},
		{Team: "Denver Nuggets", City: "Denver", Lat: 39.748, Lon: -105.007},
		{Team: "Detroit Pistons", City: "Detroit", Lat: 42.341, Lon: -83.055},
		{Team: "Golden State Warriors", City: "San Francisco", Lat: 37.768, Lon: -122.387},
		{Team: "Houston Rockets", City: "Houston", Lat: 29.750, Lon: -95.362},
		{Team: "Indiana Pacers", City: "Indianapolis", Lat: 39.764, Lon: -86.155},
		{Team: "LA Clippers", City: "Los Angeles", Lat: 34.043, Lon: -118.267},
		{Team: "Los Angeles Lakers", City: "Los Angeles", Lat: 34.043, Lon: -118.267},
		{Team: "Memphis Grizzlies", City: "Memphis", Lat: 35.138, Lon: -90.050},
		{Team: "Miami Heat", City: "Miami", Lat: 25.781, Lon: -80.187},
		{Team: "Milwaukee Bucks", City: "Milwaukee", Lat: 43.045, Lon: -87.917},
		{Team: "Minnesota Timberwolves", City: "Minneapolis", Lat: 44.979, Lon: -93.276},
		{Team: "New Orleans Pelicans", City: "New Orleans", Lat: 29.949, Lon: -90.082},
		{Team: "New York Knicks", City: "New York", Lat: 40.750, Lon: -73.993},
		{Team: "Oklahoma City Thunder", City: "Oklahoma City", Lat: 35.463, Lon: -97.515},
		{Team: "Orlando Magic", City: "Orlando", Lat: 28.539, Lon: -81.383},
		{Team: "Philadelphia 76ers", City: "Philadelphia", Lat: 39.901, Lon: -75.166},
		{Team: "Phoenix Suns", City: "Phoenix", Lat: 33.445, Lon: -112.067},
		{Team: "Portland Trail Blazers", City: "Portland", Lat: 45.531, Lon: -122.666},
		{Team: "Sacramento Kings", City: "Sacramento", Lat: 38.580, Lon: -121.491},
		{Team: "San Antonio Spurs", City: "San Antonio", Lat: 29.426, Lon: -98.437},
		{Team: "Toronto Raptors", City: "Toronto", Lat: 43.643, Lon: -79.379},
		{Team: "Utah Jazz", City: "Salt Lake City", Lat: 40.768, Lon: -111.901},
		{Team: "Washington Wizards", City: "Washington, D.C.", Lat: 38.898, Lon: -77.020},
	}
	t := make(Table, len(rows))
	for _, v := range rows {
		t[v.Team] = v
	}

	return t
}
