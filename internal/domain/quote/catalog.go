package quote

// Service is one fixed-price pool-cleaning offering from the demo.
type Service struct {
	ID          int
	Name        string
	Description string
	Price       int64
}

// Zone is a serviced comuna with its road distance from base (Chillán).
type Zone struct {
	ID         int
	Name       string
	DistanceKm float64
}

var services = []Service{
	{ID: 1, Name: "Limpieza Básica", Description: "Limpieza superficial, retiro de hojas, medición pH y cloro", Price: 25000},
	{ID: 2, Name: "Limpieza Completa", Description: "Aspirado de fondo, cepillado paredes, limpieza skimmer y filtros", Price: 45000},
	{ID: 3, Name: "Mantención Mensual", Description: "Visita semanal con limpieza y químicos incluidos (4 visitas)", Price: 80000},
	{ID: 4, Name: "Recuperación Agua Verde", Description: "Tratamiento completo para piscinas con algas", Price: 120000},
	{ID: 5, Name: "Apertura de Temporada", Description: "Puesta a punto completa, revisión equipos, llenado y tratamiento", Price: 150000},
}

var zones = []Zone{
	{ID: 1, Name: "Chillán", DistanceKm: 0},
	{ID: 2, Name: "Chillán Viejo", DistanceKm: 5},
	{ID: 3, Name: "Bulnes", DistanceKm: 17},
	{ID: 4, Name: "San Ignacio", DistanceKm: 20},
	{ID: 5, Name: "San Carlos", DistanceKm: 25},
	{ID: 6, Name: "Coihueco", DistanceKm: 27},
	{ID: 7, Name: "Quillón", DistanceKm: 30},
	{ID: 8, Name: "Yungay", DistanceKm: 35},
	{ID: 9, Name: "El Carmen", DistanceKm: 40},
	{ID: 10, Name: "Pinto", DistanceKm: 45},
	{ID: 11, Name: "Pemuco", DistanceKm: 50},
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

func ServiceByID(id int) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func ZoneByID(id int) (Zone, bool) {
	for _, z := range zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}
