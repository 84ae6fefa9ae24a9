package quran

type Surah struct {
	ID          int    `json:"id" db:"id"`
	Nama        string `json:"nama" db:"nama"`
	NamaLatin   string `json:"nama_latin" db:"nama_latin"`
	Arti        string `json:"arti" db:"arti"`
	JumlahAyat  int    `json:"jumlah_ayat" db:"jumlah_ayat"`
	TempatTurun string `json:"tempat_turun" db:"tempat_turun"`
	Deskripsi   string `json:"deskripsi" db:"deskripsi"`
}

type Ayat struct {
	ID            int    `json:"id" db:"id"`
	SurahID       int    `json:"surah_id" db:"surah_id"`
	NomorAyat     int    `json:"nomor_ayat" db:"nomor_ayat"`
	TeksArab      string `json:"teks_arab" db:"teks_arab"`
	TeksLatin     string `json:"teks_latin" db:"teks_latin"`
	TeksIndonesia string `json:"teks_indonesia" db:"teks_indonesia"`
}

// AyatText is a verse as listed inside a surah detail.
type AyatText struct {
	NomorAyat     int    `json:"nomor_ayat" db:"nomor_ayat"`
	TeksArab      string `json:"teks_arab" db:"teks_arab"`
	TeksLatin     string `json:"teks_latin" db:"teks_latin"`
	TeksIndonesia string `json:"teks_indonesia" db:"teks_indonesia"`
}

type SearchResult struct {
	SurahID       int    `json:"surah_id" db:"surah_id"`
	NamaSurah     string `json:"nama_surah" db:"nama_surah"`
	NomorAyat     int    `json:"nomor_ayat" db:"nomor_ayat"`
	TeksArab      string `json:"teks_arab" db:"teks_arab"`
	TeksLatin     string `json:"teks_latin" db:"teks_latin"`
	TeksIndonesia string `json:"teks_indonesia" db:"teks_indonesia"`
}

type Juz struct {
	ID         int `json:"id" db:"id"`
	StartVerse int `json:"start_verse" db:"start_verse"`
	EndVerse   int `json:"end_verse" db:"end_verse"`
}

type JuzAyat struct {
	AyatID        int    `json:"ayat_id" db:"ayat_id"`
	SurahID       int    `json:"surah_id" db:"surah_id"`
	NamaSurah     string `json:"nama_surah" db:"nama_surah"`
	NomorAyat     int    `json:"nomor_ayat" db:"nomor_ayat"`
	TeksArab      string `json:"teks_arab" db:"teks_arab"`
	TeksLatin     string `json:"teks_latin" db:"teks_latin"`
	TeksIndonesia string `json:"teks_indonesia" db:"teks_indonesia"`
}

// SearchScope selects which verse columns a search matches against.
type SearchScope int

const (
	// SearchAll matches the Arabic text or the Indonesian translation.
	SearchAll SearchScope = iota
	// SearchTranslation matches the Indonesian translation only.
	SearchTranslation
)
