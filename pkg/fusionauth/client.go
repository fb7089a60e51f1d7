package fusionauth

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a fusionauth.Client.
//
// BaseURL is the only required field. An APIKey authenticates every request
// that needs one; endpoints documented as anonymous (OAuth token exchange,
// JWT validation by signature, system status) are sent without it. A
// TenantID, once set, is attached to every request as the
// X-FusionAuth-TenantId header.
//
// All fields are read once at construction and never mutated afterwards.
type Config struct {
	// BaseURL is the FusionAuth base URL, e.g. "https://auth.example.com".
	// faclient.New normalizes it by trimming a trailing slash and adding
	// "https://" when no scheme is present.
	BaseURL string

	// APIKey is sent as the Authorization header value, without a scheme
	// prefix, on authenticated requests.
	APIKey string

	// TenantID scopes every request to a tenant via the
	// X-FusionAuth-TenantId header. Optional.
	TenantID string

	// ConnectTimeout bounds the connection phase of each call. Defaults to
	// 2 seconds.
	ConnectTimeout time.Duration

	// ReadTimeout bounds the response-read phase of each call. Defaults to
	// 2 seconds. The two budgets are independent.
	ReadTimeout time.Duration

	// TLSClientCert and TLSClientKey are PEM file paths for mutual TLS,
	// applied only when BaseURL uses https.
	TLSClientCert string
	TLSClientKey  string

	// ProxyURL routes requests through a proxy; ProxyUsername and
	// ProxyPassword add basic credentials to it.
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// IdentityClients provides access to identity resource clients.
type IdentityClients interface {
	Applications() ApplicationsClient
	Users() UsersClient
	Registrations() RegistrationsClient
	Groups() GroupsClient
}

// TokenClients provides access to authentication and token resource clients.
type TokenClients interface {
	Login() LoginClient
	JWT() JWTClient
	OAuth() OAuthClient
	TwoFactor() TwoFactorClient
	WebAuthn() WebAuthnClient
}

// TenantClients provides access to tenant resource clients.
type TenantClients interface {
	Tenants() TenantsClient
}

// SystemClients provides access to search and system resource clients.
type SystemClients interface {
	Search() SearchClient
	System() SystemClient
}

// Client is the FusionAuth API client surface.
type Client interface {
	IdentityClients
	TokenClients
	TenantClients
	SystemClients
}

// ApplicationsClient manages applications and their roles.
type ApplicationsClient interface {
	Create(ctx context.Context, applicationID string, request *ApplicationRequest) (*ApplicationResponse, error)
	Get(ctx context.Context, applicationID string) (*ApplicationResponse, error)
	List(ctx context.Context, inactive bool) (*ApplicationResponse, error)
	Update(ctx context.Context, applicationID string, request *ApplicationRequest) (*ApplicationResponse, error)
	Deactivate(ctx context.Context, applicationID string) error
	Reactivate(ctx context.Context, applicationID string) (*ApplicationResponse, error)
	Delete(ctx context.Context, applicationID string, hardDelete bool) error
	CreateRole(ctx context.Context, applicationID string, request *ApplicationRequest) (*ApplicationResponse, error)
	UpdateRole(ctx context.Context, applicationID, roleID string, request *ApplicationRequest) (*ApplicationResponse, error)
	DeleteRole(ctx context.Context, applicationID, roleID string) error
	GetOAuthConfiguration(ctx context.Context, applicationID string) (*OAuthConfigurationResponse, error)
}

// UsersClient manages users.
type UsersClient interface {
	Create(ctx context.Context, userID string, request *UserRequest) (*UserResponse, error)
	Get(ctx context.Context, userID string) (*UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*UserResponse, error)
	GetByIDs(ctx context.Context, userIDs []string) (*UserResponse, error)
	Update(ctx context.Context, userID string, request *UserRequest) (*UserResponse, error)
	Deactivate(ctx context.Context, userID string) error
	Reactivate(ctx context.Context, userID string) (*UserResponse, error)
	Delete(ctx context.Context, userID string, hardDelete bool) error
	ChangePassword(ctx context.Context, changePasswordID string, request *ChangePasswordRequest) (*ChangePasswordResponse, error)
	ForgotPassword(ctx context.Context, request *ForgotPasswordRequest) (*ForgotPasswordResponse, error)
	VerifyEmail(ctx context.Context, verificationID string) error
	ResendEmailVerification(ctx context.Context, email string) error
	CommentOnUser(ctx context.Context, request *UserCommentRequest) (*UserCommentResponse, error)
	GetComments(ctx context.Context, userID string) (*UserCommentResponse, error)
}

// RegistrationsClient manages user registrations for applications.
type RegistrationsClient interface {
	Create(ctx context.Context, userID string, request *RegistrationRequest) (*RegistrationResponse, error)
	Get(ctx context.Context, userID, applicationID string) (*RegistrationResponse, error)
	Update(ctx context.Context, userID string, request *RegistrationRequest) (*RegistrationResponse, error)
	Delete(ctx context.Context, userID, applicationID string) error
}

// GroupsClient manages groups and their memberships.
type GroupsClient interface {
	Create(ctx context.Context, groupID string, request *GroupRequest) (*GroupResponse, error)
	Get(ctx context.Context, groupID string) (*GroupResponse, error)
	List(ctx context.Context) (*GroupResponse, error)
	Update(ctx context.Context, groupID string, request *GroupRequest) (*GroupResponse, error)
	Delete(ctx context.Context, groupID string) error
	AddMembers(ctx context.Context, request *MemberRequest) (*MemberResponse, error)
	RemoveMembers(ctx context.Context, request *MemberDeleteRequest) error
}

// TenantsClient manages tenants.
type TenantsClient interface {
	Create(ctx context.Context, tenantID string, request *TenantRequest) (*TenantResponse, error)
	Get(ctx context.Context, tenantID string) (*TenantResponse, error)
	List(ctx context.Context) (*TenantResponse, error)
	Update(ctx context.Context, tenantID string, request *TenantRequest) (*TenantResponse, error)
	Delete(ctx context.Context, tenantID string, async bool) error
}

// LoginClient performs credential-based authentication flows.
type LoginClient interface {
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, global bool, refreshToken string) error
	PasswordlessStart(ctx context.Context, request *PasswordlessStartRequest) (*PasswordlessStartResponse, error)
	PasswordlessLogin(ctx context.Context, request *PasswordlessLoginRequest) (*LoginResponse, error)
	TwoFactorLogin(ctx context.Context, request *TwoFactorLoginRequest) (*LoginResponse, error)
}

// JWTClient manages JWTs, public keys, and refresh tokens.
type JWTClient interface {
	Issue(ctx context.Context, bearerToken, applicationID, refreshToken string) (*IssueResponse, error)
	Reissue(ctx context.Context, request *RefreshRequest) (*RefreshResponse, error)
	Validate(ctx context.Context, encodedJWT string) (*ValidateResponse, error)
	GetPublicKey(ctx context.Context, keyID string) (*PublicKeyResponse, error)
	GetPublicKeyByApplication(ctx context.Context, applicationID string) (*PublicKeyResponse, error)
	GetPublicKeys(ctx context.Context) (*PublicKeyResponse, error)
	GetJSONWebKeySet(ctx context.Context) (*JWKSResponse, error)
	GetRefreshTokens(ctx context.Context, userID string) (*RefreshTokenResponse, error)
	RevokeRefreshToken(ctx context.Context, token, userID, applicationID string) error
}

// OAuthClient performs the OAuth2/OIDC token flows. These endpoints speak
// form-urlencoded bodies and are anonymous apart from client credentials.
type OAuthClient interface {
	ExchangeCodeForAccessToken(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*AccessToken, error)
	ClientCredentialsGrant(ctx context.Context, clientID, clientSecret, scope string) (*AccessToken, error)
	RefreshTokenGrant(ctx context.Context, refreshToken, clientID, clientSecret string) (*AccessToken, error)
	Introspect(ctx context.Context, token, clientID, clientSecret string) (IntrospectResponse, error)
	GetUserInfo(ctx context.Context, bearerToken string) (UserInfoResponse, error)
}

// TwoFactorClient manages two-factor methods and codes.
type TwoFactorClient interface {
	Enable(ctx context.Context, userID string, request *TwoFactorRequest) (*TwoFactorResponse, error)
	Disable(ctx context.Context, userID, code, methodID string) error
	SendCode(ctx context.Context, request *TwoFactorSendRequest) error
	StartLogin(ctx context.Context, request *TwoFactorStartRequest) (*TwoFactorStartResponse, error)
}

// WebAuthnClient manages WebAuthn credentials and ceremonies.
type WebAuthnClient interface {
	StartRegistration(ctx context.Context, request *WebAuthnRegisterStartRequest) (*WebAuthnRegisterStartResponse, error)
	CompleteRegistration(ctx context.Context, request *WebAuthnRegisterCompleteRequest) (*WebAuthnCredentialResponse, error)
	StartAssertion(ctx context.Context, request *WebAuthnStartRequest) (*WebAuthnStartResponse, error)
	CompleteAssertion(ctx context.Context, request *WebAuthnLoginRequest) (*LoginResponse, error)
	GetCredential(ctx context.Context, credentialID string) (*WebAuthnCredentialResponse, error)
	GetCredentialsForUser(ctx context.Context, userID string) (*WebAuthnCredentialResponse, error)
	DeleteCredential(ctx context.Context, credentialID string) error
}

// SearchClient runs user, audit log, and login record searches.
type SearchClient interface {
	Users(ctx context.Context, request *SearchRequest) (*SearchResponse, error)
	AuditLogs(ctx context.Context, request *AuditLogSearchRequest) (*AuditLogSearchResponse, error)
	LoginRecords(ctx context.Context, request *LoginRecordSearchRequest) (*LoginRecordSearchResponse, error)
}

// SystemClient exposes status and version information.
type SystemClient interface {
	Status(ctx context.Context) (StatusResponse, error)
	Health(ctx context.Context) error
	Version(ctx context.Context) (*VersionResponse, error)
}
