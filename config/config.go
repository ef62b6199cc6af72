package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	FrontendURL string

	// Directory (Active Directory / LDAP) settings.
	LdapURL          string
	LdapBaseDN       string
	LdapBindDN       string
	LdapBindPassword string
	LdapDomainSuffix string

	// SMTP settings for approval and password-reset mail.
	SmtpHost     string
	SmtpPort     int
	SmtpUser     string
	SmtpPassword string
	MailFrom     string
	MailFromName string
	MailLogoPath string

	// Optional MinIO archive for rendered PDFs. Disabled when endpoint is empty.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "forms-system")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "forms")
	ServerPort = getEnv("SERVER_PORT", "5000")

	FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	LdapURL = getEnv("AD_URL", "")
	LdapBaseDN = getEnv("AD_BASE_DN", "")
	LdapBindDN = getEnv("AD_BIND_DN", "")
	LdapBindPassword = getEnv("AD_BIND_PASSWORD", "")
	LdapDomainSuffix = getEnv("AD_DOMAIN_SUFFIX", "newlywedsfoods.co.th")

	SmtpHost = getEnv("EMAIL_HOST", "localhost")
	SmtpPort, _ = strconv.Atoi(getEnv("EMAIL_PORT", "587"))
	SmtpUser = getEnv("EMAIL_USER", "")
	SmtpPassword = getEnv("EMAIL_PASS", "")
	MailFrom = getEnv("EMAIL_FROM", SmtpUser)
	MailFromName = getEnv("EMAIL_FROM_NAME", "NWFTH - Forms System")
	MailLogoPath = getEnv("EMAIL_LOGO_PATH", "")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "")
	MinioBucket = getEnv("MINIO_BUCKET", "form-archive")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
