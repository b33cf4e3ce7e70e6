package router

import (
	"hotelops/internal/database"
	"hotelops/internal/handlers"
	"hotelops/internal/middleware"
	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/pkg/config"
	"hotelops/pkg/jwt"
	"hotelops/pkg/response"

	"github.com/gin-gonic/gin"
)

// Conjuntos de roles por nivel de acceso. Se construyen una sola vez al armar
// las rutas y se pasan explícitamente; nunca se mutan en ejecución.
var (
	lecturaTodos   = models.NewRolSet(models.RolRoot, models.RolCorpViewer, models.RolHotelAdmin, models.RolHotelAux, models.RolHotelGuest)
	lecturaBajas   = models.NewRolSet(models.RolRoot, models.RolCorpViewer, models.RolHotelAdmin, models.RolHotelAux)
	edicionHotel   = models.NewRolSet(models.RolRoot, models.RolHotelAdmin, models.RolHotelAux)
	adminHotel     = models.NewRolSet(models.RolRoot, models.RolHotelAdmin)
	soloRoot       = models.NewRolSet(models.RolRoot)
	accesoBitacora = models.NewRolSet(models.RolRoot, models.RolCorpViewer, models.RolHotelAdmin)
)

// SetupRouter arma el motor HTTP con middlewares y rutas
func SetupRouter() *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = config.GetConfig().Import.MaxFileSize

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	registerRoutes(router)
	return router
}

func registerRoutes(router *gin.Engine) {
	db := database.GetDB()
	auditoria := services.NewAuditoriaService(db)

	usuarios := services.NewUsuarioSistemaService(db, auditoria, jwt.GetManager())
	hoteles := services.NewHotelService(db, auditoria)
	departamentos := services.NewDepartamentoService(db, auditoria)
	areas := services.NewAreaService(db, auditoria)
	empleados := services.NewEmpleadoService(db, auditoria)
	dispositivos := services.NewDispositivoService(db, auditoria)
	catalogos := services.NewCatalogoService(db, auditoria)
	mantenimientos := services.NewMantenimientoService(db, auditoria)
	bajas := services.NewBajaService(db, auditoria)

	auth := middleware.NewAuthMiddleware(usuarios, auditoria, jwt.GetManager())

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		// Autenticación y cuentas del sistema
		authHandler := handlers.NewAuthHandler(usuarios)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)

			authGroup.GET("/get", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.GetUsers)
			authGroup.GET("/get/:id", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.GetUser)
			authGroup.POST("/create-user", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.CreateUser)
			authGroup.PUT("/put/:id", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.UpdateUser)
			authGroup.DELETE("/delete/:id", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.DeleteUser)
			authGroup.GET("/export/all", auth.RequireLogin(), auth.RequireRol(adminHotel), authHandler.ExportUsers)

			// cambio de contraseña propio: solo exige sesión
			authGroup.PUT("/put/:id/password", auth.RequireLogin(), authHandler.UpdatePassword)
		}

		// Hoteles
		hotelHandler := handlers.NewHotelHandler(hoteles)
		hotelesGroup := api.Group("/hoteles", auth.RequireLogin())
		{
			hotelesGroup.GET("/list", hotelHandler.ListDisponibles)

			hotelesGroup.GET("/admin/list", auth.RequireRol(soloRoot), hotelHandler.ListAdmin)
			hotelesGroup.GET("/admin/get/:id", auth.RequireRol(soloRoot), hotelHandler.GetByID)
			hotelesGroup.POST("/post", auth.RequireRol(soloRoot), hotelHandler.Create)
			hotelesGroup.PUT("/put/:id", auth.RequireRol(soloRoot), hotelHandler.Update)
			hotelesGroup.DELETE("/delete/:id", auth.RequireRol(soloRoot), hotelHandler.Delete)
		}

		// Departamentos
		departamentoHandler := handlers.NewDepartamentoHandler(departamentos)
		departamentosGroup := api.Group("/departamentos", auth.RequireLogin())
		{
			departamentosGroup.GET("/get", auth.RequireRol(lecturaTodos), departamentoHandler.List)
			departamentosGroup.GET("/get/:id", auth.RequireRol(lecturaTodos), departamentoHandler.GetByID)
			departamentosGroup.POST("/post", auth.RequireRol(adminHotel), departamentoHandler.Create)
			departamentosGroup.PUT("/put/:id", auth.RequireRol(adminHotel), departamentoHandler.Update)
			departamentosGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), departamentoHandler.Delete)
		}

		// Áreas
		areaHandler := handlers.NewAreaHandler(areas)
		areasGroup := api.Group("/areas", auth.RequireLogin())
		{
			areasGroup.GET("/get", auth.RequireRol(lecturaTodos), areaHandler.List)
			areasGroup.GET("/get/:id", auth.RequireRol(lecturaTodos), areaHandler.GetByID)
			areasGroup.POST("/post", auth.RequireRol(adminHotel), areaHandler.Create)
			areasGroup.PUT("/put/:id", auth.RequireRol(adminHotel), areaHandler.Update)
			areasGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), areaHandler.Delete)
		}

		// Staff
		empleadoHandler := handlers.NewEmpleadoHandler(empleados)
		empleadosGroup := api.Group("/usuarios", auth.RequireLogin())
		{
			empleadosGroup.GET("/get", auth.RequireRol(lecturaTodos), empleadoHandler.List)
			empleadosGroup.GET("/get/all", auth.RequireRol(lecturaTodos), empleadoHandler.ListNombres)
			empleadosGroup.GET("/get/:id", auth.RequireRol(lecturaTodos), empleadoHandler.GetByID)
			empleadosGroup.POST("/post", auth.RequireRol(edicionHotel), empleadoHandler.Create)
			empleadosGroup.PUT("/put/:id", auth.RequireRol(edicionHotel), empleadoHandler.Update)
			empleadosGroup.DELETE("/delete/:id", auth.RequireRol(edicionHotel), empleadoHandler.Delete)
			empleadosGroup.GET("/export/all", auth.RequireRol(edicionHotel), empleadoHandler.Export)
			empleadosGroup.POST("/import", auth.RequireRol(adminHotel), empleadoHandler.Import)
		}

		// Dispositivos
		dispositivoHandler := handlers.NewDispositivoHandler(dispositivos)
		dispositivosGroup := api.Group("/dispositivos", auth.RequireLogin())
		{
			dispositivosGroup.GET("/get", auth.RequireRol(lecturaTodos), dispositivoHandler.List)
			dispositivosGroup.GET("/get/all-names", auth.RequireRol(lecturaTodos), dispositivoHandler.ListNombres)
			dispositivosGroup.GET("/get/:id", auth.RequireRol(lecturaTodos), dispositivoHandler.GetByID)
			dispositivosGroup.POST("/post", auth.RequireRol(edicionHotel), dispositivoHandler.Create)
			dispositivosGroup.PUT("/put/:id", auth.RequireRol(edicionHotel), dispositivoHandler.Update)
			dispositivosGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), dispositivoHandler.Delete)
			dispositivosGroup.GET("/export/all", auth.RequireRol(edicionHotel), dispositivoHandler.ExportAll)
			dispositivosGroup.GET("/export/inactivos", auth.RequireRol(edicionHotel), dispositivoHandler.ExportInactivos)
			dispositivosGroup.POST("/import", auth.RequireRol(adminHotel), dispositivoHandler.Import)
		}

		// Catálogos globales
		catalogoHandler := handlers.NewCatalogoHandler(catalogos)
		tiposGroup := api.Group("/tipos-dispositivo", auth.RequireLogin())
		{
			tiposGroup.GET("/get", auth.RequireRol(lecturaTodos), catalogoHandler.ListTipos)
			tiposGroup.POST("/post", auth.RequireRol(adminHotel), catalogoHandler.CreateTipo)
			tiposGroup.PUT("/put/:id", auth.RequireRol(adminHotel), catalogoHandler.UpdateTipo)
			tiposGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), catalogoHandler.DeleteTipo)
		}
		sistemasGroup := api.Group("/sistemas-operativos", auth.RequireLogin())
		{
			sistemasGroup.GET("/get", auth.RequireRol(lecturaTodos), catalogoHandler.ListSistemasOperativos)
			sistemasGroup.POST("/post", auth.RequireRol(adminHotel), catalogoHandler.CreateSistemaOperativo)
			sistemasGroup.PUT("/put/:id", auth.RequireRol(adminHotel), catalogoHandler.UpdateSistemaOperativo)
			sistemasGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), catalogoHandler.DeleteSistemaOperativo)
		}
		estadosGroup := api.Group("/estados-dispositivo", auth.RequireLogin())
		{
			estadosGroup.GET("/get", auth.RequireRol(lecturaTodos), catalogoHandler.ListEstados)
			estadosGroup.POST("/post", auth.RequireRol(adminHotel), catalogoHandler.CreateEstado)
			estadosGroup.PUT("/put/:id", auth.RequireRol(adminHotel), catalogoHandler.UpdateEstado)
			estadosGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), catalogoHandler.DeleteEstado)
		}

		// Mantenimientos
		mantenimientoHandler := handlers.NewMantenimientoHandler(mantenimientos)
		mantenimientosGroup := api.Group("/mantenimientos", auth.RequireLogin())
		{
			mantenimientosGroup.GET("/get", auth.RequireRol(lecturaTodos), mantenimientoHandler.List)
			mantenimientosGroup.GET("/get/:id", auth.RequireRol(lecturaTodos), mantenimientoHandler.GetByID)
			mantenimientosGroup.POST("/post", auth.RequireRol(edicionHotel), mantenimientoHandler.Create)
			mantenimientosGroup.PUT("/put/:id", auth.RequireRol(edicionHotel), mantenimientoHandler.Update)
			mantenimientosGroup.DELETE("/delete/:id", auth.RequireRol(edicionHotel), mantenimientoHandler.Delete)
			mantenimientosGroup.GET("/export/all", auth.RequireRol(edicionHotel), mantenimientoHandler.ExportAll)
			mantenimientosGroup.GET("/export/individual/:id", auth.RequireRol(edicionHotel), mantenimientoHandler.ExportIndividual)
		}

		// Bajas
		bajaHandler := handlers.NewBajaHandler(bajas)
		bajasGroup := api.Group("/bajas", auth.RequireLogin())
		{
			bajasGroup.GET("/get", auth.RequireRol(lecturaBajas), bajaHandler.List)
			bajasGroup.GET("/get/:id", auth.RequireRol(lecturaBajas), bajaHandler.GetByID)
			bajasGroup.PUT("/put/:id", auth.RequireRol(edicionHotel), bajaHandler.Update)
			bajasGroup.DELETE("/delete/:id", auth.RequireRol(adminHotel), bajaHandler.Delete)
			bajasGroup.GET("/export/excel", auth.RequireRol(lecturaBajas), bajaHandler.Export)
		}

		// Bitácora de auditoría
		auditoriaHandler := handlers.NewAuditoriaHandler(auditoria)
		api.GET("/audit", auth.RequireLogin(), auth.RequireRol(accesoBitacora), auditoriaHandler.List)
	}
}

func healthCheck(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
