package main

import "github.com/DRSN-tech/voice-backend/internal/app"

//	@title			Voice Backend API
//	@version		1.0
//	@description	Сервис регистрации и верификации пользователей по голосу

//	@host		localhost:8080
//	@BasePath	/
func main() {
	app.Run()
}
