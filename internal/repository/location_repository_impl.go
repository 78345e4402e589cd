package repository

import (
	"strings"

	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/domain/repository"
)

// defaultLocations is the catalog shipped with the frontdesk. Order is significant:
// every listing preserves it.
var defaultLocations = []entity.Location{
	// Airports
	{ID: "loc_001", NameTh: "สนามบินสุวรรณภูมิ", NameEn: "Suvarnabhumi Airport", Category: entity.LocationCategoryAirport, Latitude: 13.6900, Longitude: 100.7501, IsActive: true},
	{ID: "loc_002", NameTh: "สนามบินดอนเมือง", NameEn: "Don Mueang Airport", Category: entity.LocationCategoryAirport, Latitude: 13.9126, Longitude: 100.6069, IsActive: true},
	{ID: "loc_003", NameTh: "สนามบินภูเก็ต", NameEn: "Phuket International Airport", Category: entity.LocationCategoryAirport, Latitude: 8.1132, Longitude: 98.3169, IsActive: true},
	{ID: "loc_004", NameTh: "สนามบินเชียงใหม่", NameEn: "Chiang Mai International Airport", Category: entity.LocationCategoryAirport, Latitude: 18.7677, Longitude: 98.9625, IsActive: true},
	{ID: "loc_005", NameTh: "สนามบินหาดใหญ่", NameEn: "Hat Yai International Airport", Category: entity.LocationCategoryAirport, Latitude: 6.9332, Longitude: 100.3929, IsActive: true},
	{ID: "loc_006", NameTh: "สนามบินอู่ตะเภา", NameEn: "U-Tapao International Airport", Category: entity.LocationCategoryAirport, Latitude: 12.6799, Longitude: 101.0051, IsActive: true},

	// Train stations
	{ID: "loc_007", NameTh: "สถานีรถไฟกรุงเทพ (หัวลำโพง)", NameEn: "Bangkok Railway Station (Hua Lamphong)", Category: entity.LocationCategoryTrainStation, Latitude: 13.7366, Longitude: 100.5172, IsActive: true},
	{ID: "loc_008", NameTh: "สถานีรถไฟกรุงเทพอภิวัฒน์ (บางซื่อ)", NameEn: "Krung Thep Aphiwat Central Terminal (Bang Sue)", Category: entity.LocationCategoryTrainStation, Latitude: 13.8017, Longitude: 100.5256, IsActive: true},
	{ID: "loc_009", NameTh: "สถานีรถไฟดอนเมือง", NameEn: "Don Mueang Railway Station", Category: entity.LocationCategoryTrainStation, Latitude: 13.9196, Longitude: 100.6120, IsActive: true},
	{ID: "loc_010", NameTh: "สถานีรถไฟเชียงใหม่", NameEn: "Chiang Mai Railway Station", Category: entity.LocationCategoryTrainStation, Latitude: 18.7961, Longitude: 98.9868, IsActive: true},

	// Bus terminals
	{ID: "loc_011", NameTh: "สถานีขนส่งสายใต้ใหม่ (บางซื่อ)", NameEn: "Southern Bus Terminal (Sai Tai Mai)", Category: entity.LocationCategoryBusTerminal, Latitude: 13.7706, Longitude: 100.4606, IsActive: true},
	{ID: "loc_012", NameTh: "สถานีขนส่งหมอชิต 2 (สายเหนือ)", NameEn: "Mo Chit 2 Bus Terminal (Northern)", Category: entity.LocationCategoryBusTerminal, Latitude: 13.8522, Longitude: 100.5493, IsActive: true},
	{ID: "loc_013", NameTh: "สถานีขนส่งอีกาไม (สายตะวันออก)", NameEn: "Ekkamai Bus Terminal (Eastern)", Category: entity.LocationCategoryBusTerminal, Latitude: 13.7214, Longitude: 100.5854, IsActive: true},

	// Bangkok hotels
	{ID: "loc_014", NameTh: "โรงแรมแมนดาริน โอเรียนเต็ล", NameEn: "Mandarin Oriental Bangkok", Category: entity.LocationCategoryHotel, Latitude: 13.7246, Longitude: 100.5151, IsActive: true},
	{ID: "loc_015", NameTh: "โรงแรมเพนินซูล่า", NameEn: "The Peninsula Bangkok", Category: entity.LocationCategoryHotel, Latitude: 13.7231, Longitude: 100.5109, IsActive: true},
	{ID: "loc_016", NameTh: "โรงแรมเซ็นทารา แกรนด์", NameEn: "Centara Grand at CentralWorld", Category: entity.LocationCategoryHotel, Latitude: 13.7469, Longitude: 100.5398, IsActive: true},
	{ID: "loc_017", NameTh: "โรงแรมเดอะ สุโกศล", NameEn: "The Sukosol Hotel", Category: entity.LocationCategoryHotel, Latitude: 13.7557, Longitude: 100.5395, IsActive: true},
	{ID: "loc_018", NameTh: "โรงแรมรอยัล ออคิด เชอราตัน", NameEn: "Royal Orchid Sheraton Hotel & Towers", Category: entity.LocationCategoryHotel, Latitude: 13.7297, Longitude: 100.5162, IsActive: true},

	// Shopping centers
	{ID: "loc_019", NameTh: "ห้างสรรพสินค้าเซ็นทรัลเวิลด์", NameEn: "CentralWorld", Category: entity.LocationCategoryShopping, Latitude: 13.7469, Longitude: 100.5398, IsActive: true},
	{ID: "loc_020", NameTh: "ห้างสรรพสินค้าสยามพารากอน", NameEn: "Siam Paragon", Category: entity.LocationCategoryShopping, Latitude: 13.7465, Longitude: 100.5347, IsActive: true},
	{ID: "loc_021", NameTh: "ห้างสรรพสินค้าเอ็มบีเค", NameEn: "MBK Center", Category: entity.LocationCategoryShopping, Latitude: 13.7448, Longitude: 100.5300, IsActive: true},
	{ID: "loc_022", NameTh: "ห้างสรรพสินค้าไอคอนสยาม", NameEn: "ICONSIAM", Category: entity.LocationCategoryShopping, Latitude: 13.7268, Longitude: 100.5104, IsActive: true},
	{ID: "loc_023", NameTh: "ห้างสรรพสินค้าเทอร์มินอล 21", NameEn: "Terminal 21", Category: entity.LocationCategoryShopping, Latitude: 13.7376, Longitude: 100.5601, IsActive: true},
	{ID: "loc_024", NameTh: "ห้างสรรพสินค้าเซ็นทรัล พัทยา", NameEn: "Central Pattaya", Category: entity.LocationCategoryShopping, Latitude: 12.9276, Longitude: 100.8775, IsActive: true},

	// Landmarks
	{ID: "loc_025", NameTh: "วัดพระแก้ว", NameEn: "Temple of the Emerald Buddha (Wat Phra Kaew)", Category: entity.LocationCategoryLandmark, Latitude: 13.7515, Longitude: 100.4925, IsActive: true},
	{ID: "loc_026", NameTh: "วัดโพธิ์", NameEn: "Wat Pho", Category: entity.LocationCategoryLandmark, Latitude: 13.7465, Longitude: 100.4927, IsActive: true},
	{ID: "loc_027", NameTh: "วัดอรุณราชวราราม", NameEn: "Wat Arun (Temple of Dawn)", Category: entity.LocationCategoryLandmark, Latitude: 13.7437, Longitude: 100.4887, IsActive: true},
	{ID: "loc_028", NameTh: "ถนนข้าวสาร", NameEn: "Khao San Road", Category: entity.LocationCategoryLandmark, Latitude: 13.7589, Longitude: 100.4978, IsActive: true},
	{ID: "loc_029", NameTh: "ตลาดน้ำดำเนินสะดวก", NameEn: "Damnoen Saduak Floating Market", Category: entity.LocationCategoryLandmark, Latitude: 13.5186, Longitude: 99.9554, IsActive: true},
	{ID: "loc_030", NameTh: "เยาวราช (ไชน่าทาวน์)", NameEn: "Yaowarat (Chinatown)", Category: entity.LocationCategoryLandmark, Latitude: 13.7397, Longitude: 100.5100, IsActive: true},

	// Ports and piers
	{ID: "loc_031", NameTh: "ท่าเรือพระราม 8", NameEn: "Rama VIII Pier", Category: entity.LocationCategoryPort, Latitude: 13.7701, Longitude: 100.4968, IsActive: true},
	{ID: "loc_032", NameTh: "ท่าเรือสาทร", NameEn: "Sathorn Pier", Category: entity.LocationCategoryPort, Latitude: 13.7246, Longitude: 100.5151, IsActive: true},
	{ID: "loc_033", NameTh: "ท่าเรือบาหลี หาย", NameEn: "Bali Hai Pier", Category: entity.LocationCategoryPort, Latitude: 12.9234, Longitude: 100.8821, IsActive: true},

	// Pattaya
	{ID: "loc_034", NameTh: "หาดพัทยา", NameEn: "Pattaya Beach", Category: entity.LocationCategoryLandmark, Latitude: 12.9342, Longitude: 100.8825, IsActive: true},
	{ID: "loc_035", NameTh: "ถนนคนเดินพัทยา", NameEn: "Walking Street Pattaya", Category: entity.LocationCategoryLandmark, Latitude: 12.9276, Longitude: 100.8745, IsActive: true},

	// Phuket
	{ID: "loc_036", NameTh: "หาดป่าตอง", NameEn: "Patong Beach", Category: entity.LocationCategoryLandmark, Latitude: 7.8967, Longitude: 98.2967, IsActive: true},
	{ID: "loc_037", NameTh: "หาดกะตะ", NameEn: "Kata Beach", Category: entity.LocationCategoryLandmark, Latitude: 7.8145, Longitude: 98.2992, IsActive: true},
	{ID: "loc_038", NameTh: "หาดกะรน", NameEn: "Karon Beach", Category: entity.LocationCategoryLandmark, Latitude: 7.8390, Longitude: 98.2960, IsActive: true},

	// Chiang Mai
	{ID: "loc_039", NameTh: "ประตูท่าแพ เชียงใหม่", NameEn: "Tha Pae Gate Chiang Mai", Category: entity.LocationCategoryLandmark, Latitude: 18.7883, Longitude: 98.9935, IsActive: true},
	{ID: "loc_040", NameTh: "วัดพระธาตุดอยสุเทพ", NameEn: "Wat Phra That Doi Suthep", Category: entity.LocationCategoryLandmark, Latitude: 18.8047, Longitude: 98.9216, IsActive: true},
}

type locationRepository struct {
	locations []entity.Location
}

// NewLocationRepository returns the built-in catalog.
func NewLocationRepository() repository.LocationRepository {
	return NewLocationRepositoryFrom(defaultLocations)
}

// NewLocationRepositoryFrom builds a catalog over a copy of the given entries.
func NewLocationRepositoryFrom(locations []entity.Location) repository.LocationRepository {
	owned := make([]entity.Location, len(locations))
	copy(owned, locations)
	return &locationRepository{locations: owned}
}

func (r *locationRepository) FindActive() []entity.Location {
	return r.filter(func(loc *entity.Location) bool { return true })
}

func (r *locationRepository) FindByCategory(category entity.LocationCategory) []entity.Location {
	return r.filter(func(loc *entity.Location) bool {
		return loc.Category == category
	})
}

// Search matches the Thai name case-sensitively against the raw query and the
// English name case-insensitively against the trimmed query.
func (r *locationRepository) Search(query string) []entity.Location {
	if strings.TrimSpace(query) == "" {
		return r.FindActive()
	}

	term := strings.ToLower(strings.TrimSpace(query))
	return r.filter(func(loc *entity.Location) bool {
		return strings.Contains(loc.NameTh, query) ||
			strings.Contains(strings.ToLower(loc.NameEn), term)
	})
}

func (r *locationRepository) FindByName(name string) *entity.Location {
	for i := range r.locations {
		loc := r.locations[i]
		if loc.IsActive && (loc.NameTh == name || loc.NameEn == name) {
			return &loc
		}
	}
	return nil
}

// filter walks active entries in catalog order. The result is always a fresh slice.
func (r *locationRepository) filter(keep func(loc *entity.Location) bool) []entity.Location {
	result := make([]entity.Location, 0, len(r.locations))
	for i := range r.locations {
		loc := &r.locations[i]
		if loc.IsActive && keep(loc) {
			result = append(result, *loc)
		}
	}
	return result
}
