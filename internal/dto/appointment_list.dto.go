package dto

type AppointmentListDTO struct {
	Client  string `json:"client"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type AppointmentDetailDTO struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	DurationMin int    `json:"duration_min"`
	Price       string `json:"price"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Token       string `json:"token"`
}
