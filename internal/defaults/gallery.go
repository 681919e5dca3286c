package defaults

import "github.com/starford/osirris/internal/models"

const (
	imgField     = "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=600&h=600&fit=crop"
	imgSensor    = "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=600&h=600&fit=crop"
	imgEquipment = "https://images.unsplash.com/photo-1574943320219-553eb213f72d?w=600&h=600&fit=crop"
)

// Media is the placeholder gallery shown when no source has media items.
// The placeholder videos have no playable URL, so they are listed as photos.
func Media() []models.MediaItem {
	return []models.MediaItem{
		{ID: "1", Title: "Field Testing in Tunisia", Type: models.MediaPhoto, Image: imgField, Category: "Field Testing"},
		{ID: "2", Title: "Sensor Installation Process", Type: models.MediaPhoto, Image: imgSensor, Category: "Installation"},
		{ID: "3", Title: "Smart Tensiometer Close-up", Type: models.MediaPhoto, Image: imgEquipment, Category: "Equipment"},
		{ID: "4", Title: "Vineyard Irrigation System", Type: models.MediaPhoto, Image: imgField, Category: "Application"},
		{ID: "5", Title: "OSIRRIS System Overview", Type: models.MediaPhoto, Image: imgSensor, Category: "Demo"},
		{ID: "6", Title: "AI Algorithm Explanation", Type: models.MediaPhoto, Image: imgEquipment, Category: "Education"},
	}
}

// Publications is the placeholder list shown when no source has publications.
func Publications() []models.Publication {
	return []models.Publication{
		{ID: "1", Title: "Edge AI for Precision Irrigation", Journal: "Journal of Agricultural Technology, Vol. 45, Issue 3", Year: "2024", FileSize: "2.4 MB", Downloads: 342, Category: "AI & ML", Color: "blue"},
		{ID: "2", Title: "LoRaWAN Network Performance", Journal: "IEEE IoT Conference Proceedings 2024", Year: "2024", FileSize: "1.8 MB", Downloads: 287, Category: "IoT", Color: "emerald"},
		{ID: "3", Title: "Water Conservation in Mediterranean Agriculture", Journal: "Agricultural Water Management Journal", Year: "2023", FileSize: "3.1 MB", Downloads: 521, Category: "Sustainability", Color: "purple"},
		{ID: "4", Title: "Solar-Powered IoT Sensors for Smart Farming", Journal: "Renewable Energy Systems Review", Year: "2023", FileSize: "2.7 MB", Downloads: 198, Category: "Green Tech", Color: "amber"},
		{ID: "5", Title: "Real-time Soil Moisture Monitoring Systems", Journal: "Sensors and Actuators Journal", Year: "2023", FileSize: "2.2 MB", Downloads: 412, Category: "Sensors", Color: "cyan"},
	}
}
