package scenario

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "scenario")
