package main

import (
	"github.com/nabilsaragih/grains/config"
	"github.com/nabilsaragih/grains/routes"
	"github.com/nabilsaragih/grains/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
