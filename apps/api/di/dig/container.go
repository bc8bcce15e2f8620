package dig_container

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/edumind/apps/api/echo"
	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/session"
	emailsvc "github.com/trezcool/edumind/services/email"
	logsvc "github.com/trezcool/edumind/services/logger"
	inmemdb "github.com/trezcool/edumind/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(clockwork.NewRealClock))
	must(c.Provide(newEmailService))
	must(c.Provide(inmemdb.Open))
	must(c.Provide(inmemdb.NewSessionRepository))
	must(c.Provide(session.NewService))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
