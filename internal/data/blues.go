package data

import "github.com/yourusername/musicquiz-api/internal/domain/entity"

var bluesLyricsQuestions = []entity.Question{
	{
		ID:            "blues_lyrics_1",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"I got the blues, I got the blues", "My baby left me, I got the blues"},
		Options:       entity.StringArray{"I Got the Blues", "Baby Left Me", "Got the Blues", "Left Me Blues"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_2",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Juju music, juju music", "We dey play juju music"},
		Options:       entity.StringArray{"Juju Music", "Juju Music", "We Dey Play", "Play Juju"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_3",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Synchro system, synchro system", "We dey play synchro system"},
		Options:       entity.StringArray{"Synchro System", "Synchro System", "Synchro System", "We Dey Play"},
		CorrectOption: 2,
		SongTitle:     "Synchro System",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_4",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Aura, aura, aura", "We dey play aura"},
		Options:       entity.StringArray{"Aura", "Aura", "Aura", "Aura"},
		CorrectOption: 3,
		SongTitle:     "Aura",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_5",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Dance, dance, dance", "We dey dance, dance, dance"},
		Options:       entity.StringArray{"Dance", "Dance", "Dance", "Dance"},
		CorrectOption: 0,
		SongTitle:     "Dance",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_6",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"I got the blues, I got the blues", "My baby left me, I got the blues"},
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_7",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Juju music, juju music", "We dey play juju music"},
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "Chief Ebenezer Obey",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_8",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Synchro system, synchro system", "We dey play synchro system"},
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 2,
		SongTitle:     "Synchro System",
		ArtistName:    "Chief Commander Ebenezer Obey",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_9",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"I got the blues, I got the blues", "My baby left me, I got the blues"},
		Options:       entity.StringArray{"I Got the Blues - King Sunny Ade", "Baby Left Me - Chief Ebenezer Obey", "Got the Blues - Chief Commander Ebenezer Obey", "Left Me Blues - King Sunny Ade"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_lyrics_10",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Juju music, juju music", "We dey play juju music"},
		Options:       entity.StringArray{"Juju Music - King Sunny Ade", "Juju Music - Chief Ebenezer Obey", "We Dey Play - Chief Commander Ebenezer Obey", "Play Juju - King Sunny Ade"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "Chief Ebenezer Obey",
		Category:      "blues",
	},
}

var bluesAudioQuestions = []entity.Question{
	{
		ID:            "blues_audio_1",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/i-got-blues-clip.mp3",
		Options:       entity.StringArray{"I Got the Blues", "Baby Left Me", "Got the Blues", "Left Me Blues"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_2",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/juju-music-clip.mp3",
		Options:       entity.StringArray{"Juju Music", "Juju Music", "We Dey Play", "Play Juju"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_3",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/synchro-system-clip.mp3",
		Options:       entity.StringArray{"Synchro System", "Synchro System", "Synchro System", "We Dey Play"},
		CorrectOption: 2,
		SongTitle:     "Synchro System",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_4",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/aura-clip.mp3",
		Options:       entity.StringArray{"Aura", "Aura", "Aura", "Aura"},
		CorrectOption: 3,
		SongTitle:     "Aura",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_5",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/dance-clip.mp3",
		Options:       entity.StringArray{"Dance", "Dance", "Dance", "Dance"},
		CorrectOption: 0,
		SongTitle:     "Dance",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_6",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/i-got-blues-artist-clip.mp3",
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_7",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/juju-music-artist-clip.mp3",
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "Chief Ebenezer Obey",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_8",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/synchro-system-artist-clip.mp3",
		Options:       entity.StringArray{"King Sunny Ade", "Chief Ebenezer Obey", "Chief Commander Ebenezer Obey", "King Sunny Ade"},
		CorrectOption: 2,
		SongTitle:     "Synchro System",
		ArtistName:    "Chief Commander Ebenezer Obey",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_9",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/i-got-blues-both-clip.mp3",
		Options:       entity.StringArray{"I Got the Blues - King Sunny Ade", "Baby Left Me - Chief Ebenezer Obey", "Got the Blues - Chief Commander Ebenezer Obey", "Left Me Blues - King Sunny Ade"},
		CorrectOption: 0,
		SongTitle:     "I Got the Blues",
		ArtistName:    "King Sunny Ade",
		Category:      "blues",
	},
	{
		ID:            "blues_audio_10",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://your-cloudflare-r2-url.com/blues/juju-music-both-clip.mp3",
		Options:       entity.StringArray{"Juju Music - King Sunny Ade", "Juju Music - Chief Ebenezer Obey", "We Dey Play - Chief Commander Ebenezer Obey", "Play Juju - King Sunny Ade"},
		CorrectOption: 1,
		SongTitle:     "Juju Music",
		ArtistName:    "Chief Ebenezer Obey",
		Category:      "blues",
	},
}
