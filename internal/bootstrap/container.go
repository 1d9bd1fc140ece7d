package bootstrap

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"studyhub-be/internal/config"
	"studyhub-be/internal/controller"
	"studyhub-be/internal/pkg/logger"
	"studyhub-be/internal/repository/unitofwork"
	"studyhub-be/internal/service"
	"studyhub-be/pkg/treecache"
)

type Container struct {
	// Controllers
	NodeController      controller.INodeController
	QuestionController  controller.IQuestionController
	DashboardController controller.IDashboardController
	ActivityController  controller.IActivityController
	DocumentController  controller.IDocumentController

	// Background services (main.go runs them)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Subtree cache
	subtreeCache := treecache.New(time.Duration(cfg.Cache.SubtreeTTLMinutes) * time.Minute)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Activity.TopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Activity.TopicName,
		uowFactory,
		sysLogger,
	)

	nodeService := service.NewNodeService(uowFactory, subtreeCache)
	questionService := service.NewQuestionService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger)
	activityService := service.NewActivityService(uowFactory, publisherService)
	documentService := service.NewDocumentService(uowFactory)

	// 5. Controllers
	return &Container{
		NodeController:      controller.NewNodeController(nodeService),
		QuestionController:  controller.NewQuestionController(questionService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ActivityController:  controller.NewActivityController(activityService),
		DocumentController:  controller.NewDocumentController(documentService),

		ConsumerService: consumerService,
	}
}
