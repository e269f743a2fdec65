package data

import "github.com/yourusername/musicquiz-api/internal/domain/entity"

var afrobeatsLyricsQuestions = []entity.Question{
	{
		ID:            "afro_lyrics_1",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"I'm feeling good, I'm feeling great", "This is my time, this is my fate"},
		Options:       entity.StringArray{"Feeling Good", "Great Time", "Dance All Night", "Break of Dawn"},
		CorrectOption: 0,
		SongTitle:     "Feeling Good",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_2",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Naija to the world, we dey represent", "Our music dey sweet, no be for pretend"},
		Options:       entity.StringArray{"World Music", "Naija to the World", "Sweet Music", "African Music"},
		CorrectOption: 1,
		SongTitle:     "Naija to the World",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_3",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Love is beautiful, love is true", "When I'm with you, I feel brand new"},
		Options:       entity.StringArray{"Beautiful Love", "True Love", "Love is Beautiful", "Complete Love"},
		CorrectOption: 2,
		SongTitle:     "Love is Beautiful",
		ArtistName:    "Burna Boy",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_4",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Money dey come, money dey go", "But my hustle no dey slow"},
		Options:       entity.StringArray{"Money Come", "Hustle No Slow", "Work All Night", "Family First"},
		CorrectOption: 3,
		SongTitle:     "Family First",
		ArtistName:    "Tiwa Savage",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_5",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Party don start, everybody dey dance", "We dey enjoy, we dey romance"},
		Options:       entity.StringArray{"Party Don Start", "Everybody Dance", "Sweet Music", "Night We Live"},
		CorrectOption: 0,
		SongTitle:     "Party Don Start",
		ArtistName:    "Tekno",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_6",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"I'm the Starboy, I'm the king", "My music dey make everybody sing"},
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 0,
		SongTitle:     "Starboy",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_7",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"OBO, that's my name", "I dey make hits, I dey bring fame"},
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 1,
		SongTitle:     "OBO",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_8",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"African Giant, that's my title", "My music dey cross every border"},
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 2,
		SongTitle:     "African Giant",
		ArtistName:    "Burna Boy",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_9",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Sugar mummy, you dey sweet", "Your love dey make me complete"},
		Options:       entity.StringArray{"Sugar Mummy - Wizkid", "Sweet Love - Davido", "Fine Girl - Burna Boy", "Shine Bright - Tekno"},
		CorrectOption: 0,
		SongTitle:     "Sugar Mummy",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_10",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Fall, fall, fall for you", "Your love dey make me feel brand new"},
		Options:       entity.StringArray{"Fall for You - Wizkid", "Fall - Davido", "Brand New - Burna Boy", "Shine - Tekno"},
		CorrectOption: 1,
		SongTitle:     "Fall",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_11",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Money in the bank, money in the pocket", "We dey ball, we dey rocket"},
		Options:       entity.StringArray{"Money in Bank", "We Dey Ball", "From Streets to Top", "We No Stop"},
		CorrectOption: 2,
		SongTitle:     "From Streets to Top",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_12",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Omo naija, omo naija", "We dey represent, we dey para"},
		Options:       entity.StringArray{"Omo Naija", "We Dey Represent", "Lagos to Abuja", "We Dey Everywhere"},
		CorrectOption: 3,
		SongTitle:     "We Dey Everywhere",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_13",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"African queen, you dey fine", "Your beauty dey shine"},
		Options:       entity.StringArray{"African Queen", "You Dey Fine", "Beauty Dey Shine", "Make Me Glow"},
		CorrectOption: 0,
		SongTitle:     "African Queen",
		ArtistName:    "Burna Boy",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_14",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Sugar mummy, you dey sweet", "Your love dey make me complete"},
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 1,
		SongTitle:     "Sugar Mummy",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_lyrics_15",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Starboy, starboy, starboy", "I'm the starboy, starboy"},
		Options:       entity.StringArray{"Starboy - Wizkid", "Starboy - Davido", "Starboy - Burna Boy", "Starboy - Tekno"},
		CorrectOption: 0,
		SongTitle:     "Starboy",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
}

var afrobeatsAudioQuestions = []entity.Question{
	{
		ID:            "afro_audio_1",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/feeling-good-clip.mp3",
		Options:       entity.StringArray{"Feeling Good", "Great Time", "Dance All Night", "Break of Dawn"},
		CorrectOption: 0,
		SongTitle:     "Feeling Good",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_2",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/naija-to-world-clip.mp3",
		Options:       entity.StringArray{"World Music", "Naija to the World", "Sweet Music", "African Music"},
		CorrectOption: 1,
		SongTitle:     "Naija to the World",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_3",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/love-beautiful-clip.mp3",
		Options:       entity.StringArray{"Beautiful Love", "True Love", "Love is Beautiful", "Complete Love"},
		CorrectOption: 2,
		SongTitle:     "Love is Beautiful",
		ArtistName:    "Burna Boy",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_4",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/family-first-clip.mp3",
		Options:       entity.StringArray{"Money Come", "Hustle No Slow", "Work All Night", "Family First"},
		CorrectOption: 3,
		SongTitle:     "Family First",
		ArtistName:    "Tiwa Savage",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_5",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/party-start-clip.mp3",
		Options:       entity.StringArray{"Party Don Start", "Everybody Dance", "Sweet Music", "Night We Live"},
		CorrectOption: 0,
		SongTitle:     "Party Don Start",
		ArtistName:    "Tekno",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_6",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/starboy-clip.mp3",
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 0,
		SongTitle:     "Starboy",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_7",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/obo-clip.mp3",
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 1,
		SongTitle:     "OBO",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_8",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/african-giant-clip.mp3",
		Options:       entity.StringArray{"Wizkid", "Davido", "Burna Boy", "Tekno"},
		CorrectOption: 2,
		SongTitle:     "African Giant",
		ArtistName:    "Burna Boy",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_9",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/sugar-mummy-clip.mp3",
		Options:       entity.StringArray{"Sugar Mummy - Wizkid", "Sweet Love - Davido", "Fine Girl - Burna Boy", "Shine Bright - Tekno"},
		CorrectOption: 0,
		SongTitle:     "Sugar Mummy",
		ArtistName:    "Wizkid",
		Category:      "afrobeats",
	},
	{
		ID:            "afro_audio_10",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/afrobeats/fall-clip.mp3",
		Options:       entity.StringArray{"Fall for You - Wizkid", "Fall - Davido", "Brand New - Burna Boy", "Shine - Tekno"},
		CorrectOption: 1,
		SongTitle:     "Fall",
		ArtistName:    "Davido",
		Category:      "afrobeats",
	},
}
