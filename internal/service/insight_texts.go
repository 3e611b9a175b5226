package service

// Textos mostrados en la pantalla de resultados.
const (
	impactLowYoung         = "Bagus! Jejak karbon Anda tergolong rendah. Ini menunjukkan gaya hidup yang ramah lingkungan."
	impactLowAdult         = "Luar biasa! Jejak karbon Anda sangat rendah, menunjukkan komitmen terhadap lingkungan."
	impactModerateHigherEd = "Jejak karbon Anda berada di tingkat sedang. Ada peluang optimasi yang dapat memberikan dampak signifikan."
	impactModerate         = "Jejak karbon Anda cukup standar, namun masih ada ruang untuk perbaikan yang mudah dilakukan."
	impactHigh             = "Jejak karbon Anda tinggi dan perlu perhatian khusus untuk mencegah dampak klimat yang serius."

	explanationScientific = "Emisi CO2 Anda berkontribusi pada peningkatan konsentrasi gas rumah kaca di atmosfer, yang mempercepat pemanasan global dan mengakibatkan perubahan pola cuaca, naiknya permukaan laut, dan pengasaman laut yang mengancam ekosistem maritim."
	explanationPlain      = "Emisi CO2 dari aktivitas harian kita menyebabkan planet bumi semakin panas, yang membuat cuaca jadi tidak menentu, es kutub mencair, dan merusak kehidupan laut."
)

var (
	transportationRecommendations = []string{
		"Kurangi penggunaan kendaraan pribadi dengan beralih ke transportasi umum atau sepeda",
		"Pertimbangkan kendaraan listrik atau hybrid untuk perjalanan jarak jauh",
	}
	electricityRecommendations = []string{
		"Gunakan peralatan hemat energi dan matikan elektronik saat tidak digunakan",
		"Pertimbangkan pemasangan panel surya untuk rumah Anda",
	}
	consumptionRecommendations = []string{
		"Kurangi konsumsi daging menjadi 2-3 kali per minggu",
		"Praktikkan reduce, reuse, recycle untuk mengurangi limbah",
	}
)
