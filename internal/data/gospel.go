package data

import "github.com/yourusername/musicquiz-api/internal/domain/entity"

var gospelLyricsQuestions = []entity.Question{
	{
		ID:            "gospel_lyrics_1",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Praise the Lord with all your heart", "Give Him glory, set apart"},
		Options:       entity.StringArray{"Jesus is the Way", "Truth and Life", "Pure Love", "Cross for You"},
		CorrectOption: 0,
		SongTitle:     "Jesus is the Way",
		ArtistName:    "Sinach",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_2",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"I'm blessed, I'm blessed, I'm blessed", "God has given me His best"},
		Options:       entity.StringArray{"I'm Blessed", "Walking in His Way", "God's Best", "World May Say"},
		CorrectOption: 1,
		SongTitle:     "Walking in His Way",
		ArtistName:    "Frank Edwards",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_3",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Hallelujah, praise the Lord", "He's worthy to be adored"},
		Options:       entity.StringArray{"Hallelujah", "Praise the Lord", "Worthy to be Adored", "Rising Sun"},
		CorrectOption: 2,
		SongTitle:     "Worthy to be Adored",
		ArtistName:    "Mercy Chinwo",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_4",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Great is Thy faithfulness, O God my Father", "There is no shadow of turning with Thee"},
		Options:       entity.StringArray{"Great Faithfulness", "No Shadow", "Compassions Fail Not", "Great is Thy Faithfulness"},
		CorrectOption: 3,
		SongTitle:     "Great is Thy Faithfulness",
		ArtistName:    "Tope Alabi",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_5",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeSong,
		Lyrics:        entity.StringArray{"Amazing grace, how sweet the sound", "That saved a wretch like me"},
		Options:       entity.StringArray{"Amazing Grace", "Sweet Sound", "Lost and Found", "Blind but See"},
		CorrectOption: 0,
		SongTitle:     "Amazing Grace",
		ArtistName:    "John Newton",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_6",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"I am a living testimony", "God has been good to me"},
		Options:       entity.StringArray{"Sinach", "Frank Edwards", "Mercy Chinwo", "Tope Alabi"},
		CorrectOption: 0,
		SongTitle:     "Living Testimony",
		ArtistName:    "Sinach",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_7",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"You are God from beginning to the end", "There's no place for argument"},
		Options:       entity.StringArray{"Sinach", "Frank Edwards", "Mercy Chinwo", "Tope Alabi"},
		CorrectOption: 1,
		SongTitle:     "You are God",
		ArtistName:    "Frank Edwards",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_8",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeArtist,
		Lyrics:        entity.StringArray{"Excess love, excess love", "You showed me excess love"},
		Options:       entity.StringArray{"Sinach", "Frank Edwards", "Mercy Chinwo", "Tope Alabi"},
		CorrectOption: 2,
		SongTitle:     "Excess Love",
		ArtistName:    "Mercy Chinwo",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_9",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"Way maker, miracle worker", "Promise keeper, light in the darkness"},
		Options:       entity.StringArray{"Way Maker - Sinach", "Miracle Worker - Frank Edwards", "Promise Keeper - Mercy Chinwo", "Light in Darkness - Tope Alabi"},
		CorrectOption: 0,
		SongTitle:     "Way Maker",
		ArtistName:    "Sinach",
		Category:      "gospel",
	},
	{
		ID:            "gospel_lyrics_10",
		ContentKind:   entity.ContentKindLyrics,
		QuestionType:  entity.QuestionTypeBoth,
		Lyrics:        entity.StringArray{"I'm a living testimony", "God has been good to me"},
		Options:       entity.StringArray{"Living Testimony - Sinach", "Glory to Glory - Frank Edwards", "God is Good - Mercy Chinwo", "Taking Higher - Tope Alabi"},
		CorrectOption: 1,
		SongTitle:     "Glory to Glory",
		ArtistName:    "Frank Edwards",
		Category:      "gospel",
	},
}

var gospelAudioQuestions = []entity.Question{
	{
		ID:            "gospel_audio_1",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759203858824_user_trimmed_1_I_pledge_Ray%20Boltz_clip_1757471395177.mp3",
		Options:       entity.StringArray{"I pledge", "Truth and Life", "Pure Love", "Cross for You"},
		CorrectOption: 0,
		SongTitle:     "I pledge",
		ArtistName:    "Ray Boltz",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_2",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202126093_user_trimmed_1_33_Solomon_Lange_-_Imela_clip_1757469754547.mp3",
		Options:       entity.StringArray{"I'm Blessed", "Imela", "God's Best", "World May Say"},
		CorrectOption: 1,
		SongTitle:     "Imela",
		ArtistName:    "Solomon Lange",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_3",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202127216_user_trimmed_1_ajuju__chante_clip_1757473670700.mp3",
		Options:       entity.StringArray{"Hallelujah", "Praise the Lord", "Chante", "Rising Sun"},
		CorrectOption: 2,
		SongTitle:     "Chante",
		ArtistName:    "Ajuju",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_4",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202736386_user_trimmed_1_Christ_Paid_it_all_clip_1757473461021.mp3",
		Options:       entity.StringArray{"Great Faithfulness", "No Shadow", "Compassions Fail Not", "Christ Paid it all"},
		CorrectOption: 3,
		SongTitle:     "Christ Paid it all",
		ArtistName:    "The Lively Stones",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_5",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeSong,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202734963_user_trimmed_1_Chris-Morgan-Ft_-Mercy-Chinwo-Amanamo_clip_1757473452762.mp3",
		Options:       entity.StringArray{"Amanamno", "Sweet Sound", "Lost and Found", "Blind but See"},
		CorrectOption: 0,
		SongTitle:     "Amanamno",
		ArtistName:    "Chris Morgan",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_6",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202733926_user_trimmed_1_Chinyere_Udoma_-Adim_Well_Loaded-1_clip_1757473489946.mp3",
		Options:       entity.StringArray{"Chinyere Udoma", "Frank Edwards", "Mercy Chinwo", "Tope Alabi"},
		CorrectOption: 0,
		SongTitle:     "Adim Well Loaded",
		ArtistName:    "Chinyere Udoma",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_7",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202732650_user_trimmed_1_Chinwe_Ike__Estar__ft_Tuface_clip_1757473499669.mp3",
		Options:       entity.StringArray{"Sinach", "Estar ft Tuface", "Mercy Chinwo", "Tope Alabi"},
		CorrectOption: 1,
		SongTitle:     "Chinwe Ike",
		ArtistName:    "Estar ft Tuface",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_8",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeArtist,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202732650_user_trimmed_1_Chinwe_Ike__Estar__ft_Tuface_clip_1757473499669.mp3",
		Options:       entity.StringArray{"Sinach", "Frank Edwards", "Estar ft Tuface", "Tope Alabi"},
		CorrectOption: 2,
		SongTitle:     "Chinwe Ike",
		ArtistName:    "Estar ft Tuface",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_9",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759203858824_user_trimmed_1_I_pledge_Ray%20Boltz_clip_1757471395177.mp3",
		Options:       entity.StringArray{"I pledge - Ray Boltz", "Miracle Worker - Frank Edwards", "Promise Keeper - Mercy Chinwo", "Light in Darkness - Tope Alabi"},
		CorrectOption: 0,
		SongTitle:     "I pledge",
		ArtistName:    "Ray Boltz",
		Category:      "gospel",
	},
	{
		ID:            "gospel_audio_10",
		ContentKind:   entity.ContentKindAudio,
		QuestionType:  entity.QuestionTypeBoth,
		AudioURL:      "https://gnsjnbwkmiqribcvpeeh.supabase.co/storage/v1/object/public/audio-clips/nigerian-gospel/1759202126093_user_trimmed_1_33_Solomon_Lange_-_Imela_clip_1757469754547.mp3",
		Options:       entity.StringArray{"Living Testimony - Sinach", "Imela - Solomon Lange", "God is Good - Mercy Chinwo", "Taking Higher - Tope Alabi"},
		CorrectOption: 1,
		SongTitle:     "Imela",
		ArtistName:    "Solomon Lange",
		Category:      "gospel",
	},
}
