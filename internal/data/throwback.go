package data

import "github.com/yourusername/musicquiz-api/internal/domain/entity"

var throwbackLyricsQuestions = []entity.Question{
	{
		ID:            "throwback_lyrics_1",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Arise O compatriots, Nigeria's call obey", "To serve our fatherland with love and strength"},
		Options:       entity.StringArray{"Arise O Compatriots", "Nigeria's Call Obey", "Serve Our Fatherland", "Love and Strength"},
		CorrectOption: 0,
		SongTitle:     "Arise O Compatriots",
		ArtistName:    "National Anthem",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_2",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Sweet Mother", "Sweet Mother", "No Forget You", "Suffer for Me"},
		CorrectOption: 1,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_3",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Money Palava", "Money Palava", "Money Palava", "No Fit Talk"},
		CorrectOption: 2,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_4",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Ijele, Ijele, Ijele", "Ijele, Ijele, Ijele"},
		Options:       entity.StringArray{"Ijele", "Ijele", "Ijele", "Ijele"},
		CorrectOption: 3,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_5",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Osondi Owendi, Osondi Owendi", "Osondi Owendi, Osondi Owendi"},
		Options:       entity.StringArray{"Osondi Owendi", "Osondi Owendi", "Osondi Owendi", "Osondi Owendi"},
		CorrectOption: 0,
		SongTitle:     "Osondi Owendi",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_6",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_7",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_8",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Ijele, Ijele, Ijele", "Ijele, Ijele, Ijele"},
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Oliver De Coque",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_9",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Sweet mother, I no go forget you", "For the suffer wey you suffer for me"},
		Options:       entity.StringArray{"Sweet Mother - Prince Nico Mbarga", "No Forget You - Chief Stephen Osita Osadebe", "Suffer for Me - Chief Oliver De Coque", "Mother's Love - Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_lyrics_10",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Money palava, money palava", "If you no get money, you no fit talk"},
		Options:       entity.StringArray{"Money Palava - Prince Nico Mbarga", "Money Palava - Chief Stephen Osita Osadebe", "No Fit Talk - Chief Oliver De Coque", "Get Money - Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
}

var throwbackAudioQuestions = []entity.Question{
	{
		ID:            "throwback_audio_1",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/arise-compatriots-clip.mp3",
		Options:       entity.StringArray{"Arise O Compatriots", "Nigeria's Call Obey", "Serve Our Fatherland", "Love and Strength"},
		CorrectOption: 0,
		SongTitle:     "Arise O Compatriots",
		ArtistName:    "National Anthem",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_2",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/sweet-mother-clip.mp3",
		Options:       entity.StringArray{"Sweet Mother", "Sweet Mother", "No Forget You", "Suffer for Me"},
		CorrectOption: 1,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_3",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/money-palava-clip.mp3",
		Options:       entity.StringArray{"Money Palava", "Money Palava", "Money Palava", "No Fit Talk"},
		CorrectOption: 2,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_4",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/ijele-clip.mp3",
		Options:       entity.StringArray{"Ijele", "Ijele", "Ijele", "Ijele"},
		CorrectOption: 3,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_5",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/osondi-owendi-clip.mp3",
		Options:       entity.StringArray{"Osondi Owendi", "Osondi Owendi", "Osondi Owendi", "Osondi Owendi"},
		CorrectOption: 0,
		SongTitle:     "Osondi Owendi",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_6",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/sweet-mother-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_7",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/money-palava-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_8",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/ijele-artist-clip.mp3",
		Options:       entity.StringArray{"Prince Nico Mbarga", "Chief Stephen Osita Osadebe", "Chief Oliver De Coque", "Chief Osita Osadebe"},
		CorrectOption: 2,
		SongTitle:     "Ijele",
		ArtistName:    "Chief Oliver De Coque",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_9",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/sweet-mother-both-clip.mp3",
		Options:       entity.StringArray{"Sweet Mother - Prince Nico Mbarga", "No Forget You - Chief Stephen Osita Osadebe", "Suffer for Me - Chief Oliver De Coque", "Mother's Love - Chief Osita Osadebe"},
		CorrectOption: 0,
		SongTitle:     "Sweet Mother",
		ArtistName:    "Prince Nico Mbarga",
		Category:      "throwback",
	},
	{
		ID:            "throwback_audio_10",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/throwback/money-palava-both-clip.mp3",
		Options:       entity.StringArray{"Money Palava - Prince Nico Mbarga", "Money Palava - Chief Stephen Osita Osadebe", "No Fit Talk - Chief Oliver De Coque", "Get Money - Chief Osita Osadebe"},
		CorrectOption: 1,
		SongTitle:     "Money Palava",
		ArtistName:    "Chief Stephen Osita Osadebe",
		Category:      "throwback",
	},
}
