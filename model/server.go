package model

import (
	"github.com/Gobd/oasmodel/ref"
)

var serverType = newDescriptor("Server", true, ref.None,
	scalarProp("url"),
	scalarProp("description"),
	mapProp("variables", "ServerVariable"),
)

type Server struct {
	extensible
}

func NewServer() *Server {
	s := &Server{}
	s.init(serverType)
	return s
}

func (s *Server) URL() string { return s.str("url") }

func (s *Server) SetURL(v string) *Server {
	s.setStr("url", v)
	return s
}

func (s *Server) Description() string { return s.str("description") }

func (s *Server) SetDescription(v string) *Server {
	s.setStr("description", v)
	return s
}

// Variables returns the URL template variables keyed by name.
func (s *Server) Variables() Entries[*ServerVariable] {
	return entries[*ServerVariable](&s.node, "variables")
}

var serverVariableType = newDescriptor("ServerVariable", true, ref.None,
	scalarListProp("enum").meta("enumeration"),
	scalarProp("default").meta("defaultValue"),
	scalarProp("description"),
)

type ServerVariable struct {
	extensible
}

func NewServerVariable() *ServerVariable {
	v := &ServerVariable{}
	v.init(serverVariableType)
	return v
}

func (v *ServerVariable) Enum() []string { return v.strs("enum") }

func (v *ServerVariable) SetEnum(values []string) *ServerVariable {
	v.setStrs("enum", values)
	return v
}

func (v *ServerVariable) AddEnum(value string) *ServerVariable {
	v.props.AddToList("enum", value)
	return v
}

func (v *ServerVariable) Default() string { return v.str("default") }

func (v *ServerVariable) SetDefault(value string) *ServerVariable {
	v.setStr("default", value)
	return v
}

func (v *ServerVariable) Description() string { return v.str("description") }

func (v *ServerVariable) SetDescription(value string) *ServerVariable {
	v.setStr("description", value)
	return v
}
