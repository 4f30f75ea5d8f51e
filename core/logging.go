package core

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("symgraph/core", "Symbol Graph Core")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
