package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/nlsproduction/nls-api/docs"
	v1 "github.com/nlsproduction/nls-api/internal/api/handler/v1"
	"github.com/nlsproduction/nls-api/internal/api/middleware"
	"github.com/nlsproduction/nls-api/internal/config"
	"github.com/nlsproduction/nls-api/internal/repository"
	"github.com/nlsproduction/nls-api/internal/repository/dao"
	"github.com/nlsproduction/nls-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	catalogHandler := s.initCatalogHandler(db)
	contentHandler := s.initContentHandler(db)
	inquiryHandler := s.initInquiryHandler(db)
	adminHandler := s.initAdminHandler(db)
	siteHandler := v1.NewSiteHandler(s.Config.API)
	s.MountHandlers(catalogHandler, contentHandler, inquiryHandler, adminHandler, siteHandler)

	return s
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	catalogDAO := dao.NewCatalogDAO(db)
	repo := repository.NewCatalogRepository(catalogDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initContentHandler(db *gorm.DB) *v1.ContentHandler {
	contentDAO := dao.NewContentDAO(db)
	repo := repository.NewContentRepository(contentDAO)
	svc := service.NewContentService(repo)
	handler := v1.NewContentHandler(svc)

	return handler
}

func (s *Server) initInquiryHandler(db *gorm.DB) *v1.InquiryHandler {
	inquiryDAO := dao.NewInquiryDAO(db)
	repo := repository.NewInquiryRepository(inquiryDAO)
	svc := service.NewInquiryService(repo)
	handler := v1.NewInquiryHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	adminDAO := dao.NewAdminDAO(db)
	svc := service.NewAdminService(adminDAO)
	authSvc := service.NewAuthService(s.Config.API.AdminPasswordHash)
	handler := v1.NewAdminHandler(s.Config.API, svc, authSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	catalogHandler *v1.CatalogHandler,
	contentHandler *v1.ContentHandler,
	inquiryHandler *v1.InquiryHandler,
	adminHandler *v1.AdminHandler,
	siteHandler *v1.SiteHandler,
) {
	public := s.Router.Group("/api")
	{
		public.GET("/products", catalogHandler.HandleListProducts)
		public.GET("/products/:productID", catalogHandler.HandleGetProduct)
		public.GET("/packages", catalogHandler.HandleListPackages)
		public.GET("/packages/:packageID", catalogHandler.HandleGetPackage)
		public.GET("/cases", contentHandler.HandleListCases)
		public.GET("/posts", contentHandler.HandleListPosts)
		public.GET("/posts/:slug", contentHandler.HandleGetPost)
		public.GET("/site", siteHandler.HandleGetSiteInfo)
	}

	s.Router.POST("/contact", inquiryHandler.HandleSubmitInquiry)
	s.Router.GET("/thanks", inquiryHandler.HandleThanks)

	s.Router.POST("/admin/login", adminHandler.HandleLogin)

	admin := s.Router.Group("/admin/api", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/:entity", adminHandler.HandleListEntity)
		admin.POST("/:entity", adminHandler.HandleCreateEntity)
		admin.GET("/:entity/:id", adminHandler.HandleGetEntity)
		admin.PUT("/:entity/:id", adminHandler.HandleUpdateEntity)
		admin.DELETE("/:entity/:id", adminHandler.HandleDeleteEntity)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "NLS Production API"
	docs.SwaggerInfo.Description = "Catalog, content and inquiry API for the sound-equipment rental site."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
