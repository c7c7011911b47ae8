// @title           Enterprise Brain API
// @version         1.0
// @description     Ask-your-documents assistant: organization-scoped PDF knowledge base with grounded LLM answers.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package utils

//run redis
//docker run -p 6379:6379 -d redis

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
