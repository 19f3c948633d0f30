package otfgrade

import (
	"github.com/nsip/otf-grade/internal/history"
	"github.com/nsip/otf-grade/internal/util"
	"github.com/pkg/errors"
)

type Option func(*OtfGradeService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (srvc *OtfGradeService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// the name of this service instance,
// generates a short unique name if not supplied
//
func Name(name string) Option {
	return func(s *OtfGradeService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.GenerateName()
		return nil
	}
}

//
// the unique id of this service instance,
// generates a nuid if not supplied
//
func ID(id string) Option {
	return func(s *OtfGradeService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.GenerateID()
		return nil
	}
}

//
// the host address this service runs on
//
func Host(hostName string) Option {
	return func(s *OtfGradeService) error {
		if hostName == "" {
			return errors.New("must have a host name for the service")
		}
		s.serviceHost = hostName
		return nil
	}
}

//
// the port this service runs on,
// picks an available port when port is 0
//
func Port(port int) Option {
	return func(s *OtfGradeService) error {
		if port < 0 {
			return errors.Errorf("invalid service port: %d", port)
		}
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.AvailablePort()
		if err != nil {
			return errors.Wrap(err, "could not assign a service port")
		}
		s.servicePort = p
		return nil
	}
}

//
// where the rate/bandwidth table is loaded from,
// a file path or http(s) url; empty uses the built-in table
//
func RateTable(source string) Option {
	return func(s *OtfGradeService) error {
		s.rateSource = source
		return nil
	}
}

//
// how many graded attempts are kept per student
//
func HistorySize(size int) Option {
	return func(s *OtfGradeService) error {
		if size < 0 {
			return errors.Errorf("invalid history size: %d", size)
		}
		if size == 0 {
			size = history.DefaultSize
		}
		s.historySize = size
		return nil
	}
}
