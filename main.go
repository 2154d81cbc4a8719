package main

import (
	"github.com/huseyin4215/QRCal-sub002/configuration"
	"github.com/huseyin4215/QRCal-sub002/controllers"
	"github.com/huseyin4215/QRCal-sub002/gateway"
	"github.com/huseyin4215/QRCal-sub002/routes"
)

func Init() {
	configuration.LoadConfig()
	configuration.InitRedis()
	controllers.SetAPIClient(gateway.New(configuration.Cfg.APIBaseURL))
}

func main() {
	//Perform application initialization
	Init()
	r := routes.SetupRoutes()

	//Run the engine on the configured port
	if err := r.Run(":" + configuration.Cfg.Port); err != nil {
		panic(err)
	}
}
