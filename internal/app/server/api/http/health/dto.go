package health

type Input struct{}

type Output struct {
	Body HealthResponse
}

// HealthResponse - состояние сервиса и его хранилища
type HealthResponse struct {
	Status  string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Storage string `json:"storage" example:"up" doc:"Состояние хранилища записей"`
}
