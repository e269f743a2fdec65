package data

import "github.com/yourusername/musicquiz-api/internal/domain/entity"

var highlifeLyricsQuestions = []entity.Question{
	{
		ID:            "highlife_lyrics_1",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Sweet Mother", "No Forget You", "Suffer for Me", "Mother's Love"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_2",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Money Palava", "Money Palava", "No Fit Talk", "Get Money"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_3",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Ijele, Ijele, Ijele", "Ijele, Ijele, Ijele"},
		Options:       entity.StringArray{"Ijele", "Ijele", "Ijele", "Ijele"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_4",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Osondi Owendi, Osondi Owendi", "Osondi Owendi, Osondi Owendi"},
		Options:       entity.StringArray{"Osondi Owendi", "Osondi Owendi", "Osondi Owendi", "Osondi Owendi"},
		CorrectOption: 3,
		SongTitle:     "Osondi Owendi",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_5",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Kedu ka anyi gaa, kedu ka anyi gaa", "Kedu ka anyi gaa, kedu ka anyi gaa"},
		Options:       entity.StringArray{"Kedu ka anyi gaa", "Kedu ka anyi gaa", "Kedu ka anyi gaa", "Kedu ka anyi gaa"},
		CorrectOption: 0,
		SongTitle:     "Kedu ka anyi gaa",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_6",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_7",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_8",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Ijele, Ijele, Ijele", "Ijele, Ijele, Ijele"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Oliver De Coque",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_9",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Sweet Mother - Prince Nico Mbarga", "No Forget You - Chief Stephen Osita Osadebe", "Suffer for Me - Chief Oliver De Coque", "Mother's Love - Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_lyrics_10",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Money Palava - Prince Nico Mbarga", "Money Palava - Chief Stephen Osita Osadebe", "No Fit Talk - Chief Oliver De Coque", "Get Money - Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
}

var highlifeAudioQuestions = []entity.Question{
	{
		ID:            "highlife_audio_1",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/sweet-mother-clip.mp3",
		Options:       entity.StringArray{"Sweet Mother", "No Forget You", "Suffer for Me", "Mother's Love"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_2",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/money-palava-clip.mp3",
		Options:       entity.StringArray{"Money Palava", "Money Palava", "No Fit Talk", "Get Money"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_3",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/ijele-clip.mp3",
		Options:       entity.StringArray{"Ijele", "Ijele", "Ijele", "Ijele"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_4",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/osondi-owendi-clip.mp3",
		Options:       entity.StringArray{"Osondi Owendi", "Osondi Owendi", "Osondi Owendi", "Osondi Owendi"},
		CorrectOption: 3,
		SongTitle:     "Osondi Owendi",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_5",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/kedu-ka-anyi-gaa-clip.mp3",
		Options:       entity.StringArray{"Kedu ka anyi gaa", "Kedu ka anyi gaa", "Kedu ka anyi gaa", "Kedu ka anyi gaa"},
		CorrectOption: 0,
		SongTitle:     "Kedu ka anyi gaa",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_6",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/sweet-mother-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_7",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/money-palava-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_8",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/ijele-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Oliver De Coque",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_9",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/sweet-mother-both-clip.mp3",
		Options:       entity.StringArray{"Sweet Mother - Prince Nico Mbarga", "No Forget You - Chief Stephen Osita Osadebe", "Suffer for Me - Chief Oliver De Coque", "Mother's Love - Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "highlife",
	},
	{
		ID:            "highlife_audio_10",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/highlife/money-palava-both-clip.mp3",
		Options:       entity.StringArray{"Money Palava - Prince Nico Mbarga", "Money Palava - Chief Stephen Osita Osadebe", "No Fit Talk - Chief Oliver De Coque", "Get Money - Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "highlife",
	},
}
