package genai

// Prompt templates for the gateway operations. All output is expected in
// Indonesian, matching the administrative register of an RT/RW office.
const (
	extractionPrompt = `Parse data KTP/Kependudukan berikut menjadi JSON terstruktur: "%s"`

	financialInsightPrompt = `Analisis data keuangan RT berikut: Saldo: Rp%d, Pemasukan: Rp%d, Pengeluaran: Rp%d.
Daftar transaksi terakhir: %s.
Berikan evaluasi kesehatan keuangan dan saran penghematan atau alokasi dana yang bijak dalam 3 poin singkat. Bahasa Indonesia santun.`

	letterBodyPrompt = `Buatkan draf isi surat resmi %s untuk warga bernama %s dengan keperluan: %s. Gunakan bahasa Indonesia formal yang sangat sopan untuk standar administrasi RT/RW. Berikan hanya isi suratnya saja tanpa header/footer berlebihan.`

	demographicInsightPrompt = `Berdasarkan data statistik RT berikut: %s. Berikan 3 poin analisis demografis singkat dan saran untuk pengurus RT (seperti program sosial atau kesehatan yang cocok).`
)

// Fallback strings surfaced to callers when an insight call cannot complete.
const (
	FinancialInsightFallback   = "Gagal memuat analisis keuangan."
	DemographicInsightFallback = "Gagal mendapatkan analisis."
)
