package store

import "moodtunes/models"

// seedSongs is the fixed catalog loaded on first start, seven songs per
// mood label.
var seedSongs = []models.Song{
	// Happy
	{Title: "Happy", Artist: "Pharrell Williams", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/ZbZSe6N_BXs/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=ZbZSe6N_BXs"},
	{Title: "Good as Hell", Artist: "Lizzo", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/SmbmeOgWsqE/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=SmbmeOgWsqE"},
	{Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/OPf0YbXqDm0/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=OPf0YbXqDm0"},
	{Title: "Can't Stop the Feeling", Artist: "Justin Timberlake", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/ru0K8uYEZWw/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=ru0K8uYEZWw"},
	{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/iPUmE-tne5U/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=iPUmE-tne5U"},
	{Title: "Shake It Off", Artist: "Taylor Swift", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/nfWlot6h_JM/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=nfWlot6h_JM"},
	{Title: "Good Vibes", Artist: "Chris Janson", Mood: "Happy", CoverURL: "https://i.ytimg.com/vi/uQb7QRyF4p4/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=uQb7QRyF4p4"},

	// Sad
	{Title: "Someone Like You", Artist: "Adele", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/hLQl3WQQoQ0/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=hLQl3WQQoQ0"},
	{Title: "Hello", Artist: "Adele", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/YQHsXMglC9A/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=YQHsXMglC9A"},
	{Title: "The Sound of Silence", Artist: "Disturbed", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/u9Dg-g7t2l4/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=u9Dg-g7t2l4"},
	{Title: "Mad World", Artist: "Gary Jules", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/4N3N1MlvVc4/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=4N3N1MlvVc4"},
	{Title: "Hurt", Artist: "Johnny Cash", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/8AHCfZTRGiI/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=8AHCfZTRGiI"},
	{Title: "Black", Artist: "Pearl Jam", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/5ZH2it92ZmA/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=5ZH2it92ZmA"},
	{Title: "Tears in Heaven", Artist: "Eric Clapton", Mood: "Sad", CoverURL: "https://i.ytimg.com/vi/JxPj3GAYYZ0/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=JxPj3GAYYZ0"},

	// Angry
	{Title: "Break Stuff", Artist: "Limp Bizkit", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/ZpUYjpKg9KY/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=ZpUYjpKg9KY"},
	{Title: "Bodies", Artist: "Drowning Pool", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/04F4xlWSFh0/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=04F4xlWSFh0"},
	{Title: "Chop Suey", Artist: "System of a Down", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/CSvFpBOe8eY/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=CSvFpBOe8eY"},
	{Title: "In the End", Artist: "Linkin Park", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/eVTXPUF4Oz4/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=eVTXPUF4Oz4"},
	{Title: "B.Y.O.B.", Artist: "System of a Down", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/zUzd9KyIDrM/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=zUzd9KyIDrM"},
	{Title: "Killing in the Name", Artist: "Rage Against the Machine", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/bWXazVhlyxQ/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=bWXazVhlyxQ"},
	{Title: "Given Up", Artist: "Linkin Park", Mood: "Angry", CoverURL: "https://i.ytimg.com/vi/0xyxtzD54rM/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=0xyxtzD54rM"},

	// Depressed
	{Title: "Breathe Me", Artist: "Sia", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/hSjIz8oQuko/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=hSjIz8oQuko"},
	{Title: "Heavy", Artist: "Linkin Park ft. Kiiara", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/5dmQ3QWpy1Q/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=5dmQ3QWpy1Q"},
	{Title: "Numb", Artist: "Linkin Park", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/kXYiU_JCYtU/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=kXYiU_JCYtU"},
	{Title: "How to Save a Life", Artist: "The Fray", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/cjVQ36NhbMk/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=cjVQ36NhbMk"},
	{Title: "Boulevard of Broken Dreams", Artist: "Green Day", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/Soa3gO7tL-c/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=Soa3gO7tL-c"},
	{Title: "Fade to Black", Artist: "Metallica", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/WEQnzs8wl6E/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=WEQnzs8wl6E"},
	{Title: "One More Day", Artist: "Diamond Rio", Mood: "Depressed", CoverURL: "https://i.ytimg.com/vi/W7EyC0VFhLY/maxresdefault.jpg", YoutubeLink: "https://www.youtube.com/watch?v=W7EyC0VFhLY"},
}
