package model

import (
	"github.com/Gobd/oasmodel/ref"
)

var securitySchemeType = newDescriptor("SecurityScheme", true, ref.SecurityScheme,
	scalarProp("type"),
	scalarProp("description"),
	scalarProp("name").meta("apiKeyName"),
	scalarProp("in"),
	scalarProp("scheme"),
	scalarProp("bearerFormat"),
	objectProp("flows", "OAuthFlows"),
	scalarProp("openIdConnectUrl").alias("openIdConnectURL"),
)

type SecurityScheme struct {
	referable
}

func NewSecurityScheme() *SecurityScheme {
	s := &SecurityScheme{}
	s.init(securitySchemeType)
	return s
}

func (s *SecurityScheme) Type() string { return s.str("type") }

func (s *SecurityScheme) SetType(v string) *SecurityScheme {
	s.setStr("type", v)
	return s
}

func (s *SecurityScheme) Description() string { return s.str("description") }

func (s *SecurityScheme) SetDescription(v string) *SecurityScheme {
	s.setStr("description", v)
	return s
}

func (s *SecurityScheme) Name() string { return s.str("name") }

func (s *SecurityScheme) SetName(v string) *SecurityScheme {
	s.setStr("name", v)
	return s
}

func (s *SecurityScheme) In() string { return s.str("in") }

func (s *SecurityScheme) SetIn(v string) *SecurityScheme {
	s.setStr("in", v)
	return s
}

func (s *SecurityScheme) Scheme() string { return s.str("scheme") }

func (s *SecurityScheme) SetScheme(v string) *SecurityScheme {
	s.setStr("scheme", v)
	return s
}

func (s *SecurityScheme) BearerFormat() string { return s.str("bearerFormat") }

func (s *SecurityScheme) SetBearerFormat(v string) *SecurityScheme {
	s.setStr("bearerFormat", v)
	return s
}

func (s *SecurityScheme) Flows() *OAuthFlows { return getObject[*OAuthFlows](&s.node, "flows") }

func (s *SecurityScheme) SetFlows(v *OAuthFlows) *SecurityScheme {
	setObject(&s.node, "flows", v)
	return s
}

func (s *SecurityScheme) OpenIDConnectURL() string { return s.str("openIdConnectUrl") }

func (s *SecurityScheme) SetOpenIDConnectURL(v string) *SecurityScheme {
	s.setStr("openIdConnectUrl", v)
	return s
}

var oauthFlowsType = newDescriptor("OAuthFlows", true, ref.None,
	objectProp("implicit", "OAuthFlow"),
	objectProp("password", "OAuthFlow"),
	objectProp("clientCredentials", "OAuthFlow"),
	objectProp("authorizationCode", "OAuthFlow"),
)

type OAuthFlows struct {
	extensible
}

func NewOAuthFlows() *OAuthFlows {
	f := &OAuthFlows{}
	f.init(oauthFlowsType)
	return f
}

func (f *OAuthFlows) Implicit() *OAuthFlow { return getObject[*OAuthFlow](&f.node, "implicit") }

func (f *OAuthFlows) SetImplicit(v *OAuthFlow) *OAuthFlows {
	setObject(&f.node, "implicit", v)
	return f
}

func (f *OAuthFlows) Password() *OAuthFlow { return getObject[*OAuthFlow](&f.node, "password") }

func (f *OAuthFlows) SetPassword(v *OAuthFlow) *OAuthFlows {
	setObject(&f.node, "password", v)
	return f
}

func (f *OAuthFlows) ClientCredentials() *OAuthFlow {
	return getObject[*OAuthFlow](&f.node, "clientCredentials")
}

func (f *OAuthFlows) SetClientCredentials(v *OAuthFlow) *OAuthFlows {
	setObject(&f.node, "clientCredentials", v)
	return f
}

func (f *OAuthFlows) AuthorizationCode() *OAuthFlow {
	return getObject[*OAuthFlow](&f.node, "authorizationCode")
}

func (f *OAuthFlows) SetAuthorizationCode(v *OAuthFlow) *OAuthFlows {
	setObject(&f.node, "authorizationCode", v)
	return f
}

var oauthFlowType = newDescriptor("OAuthFlow", true, ref.None,
	scalarProp("authorizationUrl"),
	scalarProp("tokenUrl"),
	scalarProp("refreshUrl"),
	scalarMapProp("scopes").entry("name", "description"),
)

type OAuthFlow struct {
	extensible
}

func NewOAuthFlow() *OAuthFlow {
	f := &OAuthFlow{}
	f.init(oauthFlowType)
	return f
}

func (f *OAuthFlow) AuthorizationURL() string { return f.str("authorizationUrl") }

func (f *OAuthFlow) SetAuthorizationURL(v string) *OAuthFlow {
	f.setStr("authorizationUrl", v)
	return f
}

func (f *OAuthFlow) TokenURL() string { return f.str("tokenUrl") }

func (f *OAuthFlow) SetTokenURL(v string) *OAuthFlow {
	f.setStr("tokenUrl", v)
	return f
}

func (f *OAuthFlow) RefreshURL() string { return f.str("refreshUrl") }

func (f *OAuthFlow) SetRefreshURL(v string) *OAuthFlow {
	f.setStr("refreshUrl", v)
	return f
}

// Scopes returns the scope descriptions keyed by scope name.
func (f *OAuthFlow) Scopes() Entries[string] { return entries[string](&f.node, "scopes") }

var securityRequirementType = newDescriptor("SecurityRequirement", false, ref.None,
	Property{Name: "schemes", Shape: ShapeMap, Elem: ShapeList, Unwrapped: true, KeyAttr: "name", ValueAttr: "scopes"},
)

// SecurityRequirement maps security scheme names to required scopes.
type SecurityRequirement struct {
	node
	Entries[[]string]
}

func NewSecurityRequirement() *SecurityRequirement {
	s := &SecurityRequirement{}
	s.init(securityRequirementType)
	s.Entries = entries[[]string](&s.node, "schemes")
	return s
}

// AddScheme requires the named scheme with the given scopes. No scopes
// is written as an empty list.
func (s *SecurityRequirement) AddScheme(name string, scopes ...string) *SecurityRequirement {
	if scopes == nil {
		scopes = []string{}
	}
	s.Put(name, scopes)
	return s
}

// Scheme returns the scopes required for the named scheme.
func (s *SecurityRequirement) Scheme(name string) ([]string, bool) { return s.Get(name) }

// RemoveScheme drops the named scheme.
func (s *SecurityRequirement) RemoveScheme(name string) { s.Remove(name) }
