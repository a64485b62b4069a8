package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/config"
	"github.com/skathar/portfolio-backend/controllers"
	"github.com/skathar/portfolio-backend/middleware"
	"github.com/skathar/portfolio-backend/repository"
	"github.com/skathar/portfolio-backend/storage"
)

// Deps carries everything SetupRouter needs to wire the controllers.
type Deps struct {
	DB       *gorm.DB
	Uploader storage.Uploader
	Cfg      config.Config
}

// SetupRouter registers the whole route surface. Public reads stay open;
// every mutation except account signup, login, contact messages and the
// generic upload requires an admin session.
func SetupRouter(r *gin.Engine, deps Deps) *gin.Engine {
	cleanup := deps.Cfg.DeleteReplacedBlobs

	users := repository.NewUserRepo(deps.DB)
	heroes := repository.NewHeroRepo(deps.DB, deps.Uploader, cleanup)
	projects := repository.NewProjectRepo(deps.DB, deps.Uploader, cleanup)
	blogs := repository.NewBlogRepo(deps.DB, deps.Uploader, cleanup)
	certificates := repository.NewCertificateRepo(deps.DB, deps.Uploader, cleanup)
	skills := repository.NewSkillRepo(deps.DB, deps.Uploader, cleanup)
	messages := repository.NewMessageRepo(deps.DB)

	userCtl := controllers.NewUserController(users, deps.Cfg.JWTSecret)
	heroCtl := controllers.NewHeroController(heroes)
	projectCtl := controllers.NewProjectController(projects)
	blogCtl := controllers.NewBlogController(blogs)
	certCtl := controllers.NewCertificateController(certificates)
	skillCtl := controllers.NewSkillController(skills)
	contactCtl := controllers.NewContactController(messages)
	uploadCtl := controllers.NewUploadController(deps.Uploader)
	leetCtl := controllers.NewLeetCodeController(deps.Cfg.LeetCodeUsername)
	healthCtl := controllers.NewHealthController(deps.DB)

	authed := middleware.Authenticate(deps.DB, deps.Cfg.JWTSecret)
	admin := middleware.RequireAdmin()

	r.GET("/health", healthCtl.Check)

	user := r.Group("/user")
	{
		user.POST("/create", userCtl.Create)
		user.POST("/login", userCtl.Login)
		user.GET("/me", authed, userCtl.Me)
	}

	hero := r.Group("/hero")
	{
		hero.POST("/create", authed, admin, heroCtl.Create)
		hero.GET("/", heroCtl.GetCurrent)
		hero.GET("/all", heroCtl.GetAll)
		hero.GET("/resume/download", heroCtl.DownloadResume)
		hero.PUT("/upload/:id", authed, admin, heroCtl.Update)
		hero.DELETE("/delete/:id", authed, admin, heroCtl.Delete)
		hero.PATCH("/patch/remove-title", authed, admin, heroCtl.RemoveTitle)
	}

	project := r.Group("/project")
	{
		project.POST("/create", authed, admin, projectCtl.Create)
		project.GET("/get", projectCtl.GetAll)
		project.GET("/get/:id", authed, admin, projectCtl.GetByID)
		project.PUT("/update/:id", authed, admin, projectCtl.Update)
		project.DELETE("/delete/:id", authed, admin, projectCtl.Delete)
	}

	blog := r.Group("/blog")
	{
		blog.POST("/create", authed, admin, blogCtl.Create)
		blog.GET("/get", blogCtl.GetAll)
		blog.GET("/get/:id", blogCtl.GetByID)
		blog.PUT("/update/:id", authed, admin, blogCtl.Update)
		blog.DELETE("/delete/:id", authed, admin, blogCtl.Delete)
	}

	certificate := r.Group("/certificate")
	{
		certificate.POST("/add", authed, admin, certCtl.Create)
		certificate.GET("/get", certCtl.GetAll)
		certificate.GET("/get/:id", certCtl.GetByID)
		certificate.PUT("/update/:id", authed, admin, certCtl.Update)
		certificate.DELETE("/delete/:id", authed, admin, certCtl.Delete)
	}

	skill := r.Group("/skill")
	{
		skill.POST("/create", authed, admin, skillCtl.Create)
		skill.GET("/get", skillCtl.GetAll)
		skill.PUT("/update/:id", authed, admin, skillCtl.Update)
		skill.DELETE("/delete/:id", authed, admin, skillCtl.Delete)
	}

	contact := r.Group("/contact")
	{
		contact.POST("/create", contactCtl.Create)
		contact.GET("/get", authed, admin, contactCtl.GetAll)
		contact.DELETE("/delete/:id", authed, admin, contactCtl.Delete)
	}

	r.POST("/upload/image", uploadCtl.Image)
	r.GET("/dsa/leetcode-stats", leetCtl.Stats)

	return r
}
