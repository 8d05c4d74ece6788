package building

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "building")
