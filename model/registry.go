package model

func init() {
	register(openAPIType, func() Object { return NewOpenAPI() })
	register(infoType, func() Object { return NewInfo() })
	register(contactType, func() Object { return NewContact() })
	register(licenseType, func() Object { return NewLicense() })
	register(externalDocsType, func() Object { return NewExternalDocumentation() })
	register(serverType, func() Object { return NewServer() })
	register(serverVariableType, func() Object { return NewServerVariable() })
	register(tagType, func() Object { return NewTag() })
	register(pathsType, func() Object { return NewPaths() })
	register(pathItemType, func() Object { return NewPathItem() })
	register(operationType, func() Object { return NewOperation() })
	register(parameterType, func() Object { return NewParameter() })
	register(requestBodyType, func() Object { return NewRequestBody() })
	register(contentType, func() Object { return NewContent() })
	register(mediaTypeType, func() Object { return NewMediaType() })
	register(encodingType, func() Object { return NewEncoding() })
	register(apiResponsesType, func() Object { return NewAPIResponses() })
	register(apiResponseType, func() Object { return NewAPIResponse() })
	register(headerType, func() Object { return NewHeader() })
	register(exampleType, func() Object { return NewExample() })
	register(linkType, func() Object { return NewLink() })
	register(callbackType, func() Object { return NewCallback() })
	register(componentsType, func() Object { return NewComponents() })
	register(securitySchemeType, func() Object { return NewSecurityScheme() })
	register(oauthFlowsType, func() Object { return NewOAuthFlows() })
	register(oauthFlowType, func() Object { return NewOAuthFlow() })
	register(securityRequirementType, func() Object { return NewSecurityRequirement() })
	register(schemaType, func() Object { return NewSchema() })
	register(discriminatorType, func() Object { return NewDiscriminator() })
	register(xmlType, func() Object { return NewXML() })
}
