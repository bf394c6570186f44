package service

import (
	"Masthead/internal/api/dto"
	"Masthead/internal/model"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/redis"
	"Masthead/internal/pkg/security"
	"Masthead/internal/repository"
	"context"
	"strings"
)

type UserService interface {
	Register(ctx context.Context, registerDTO *dto.RegisterDTO) (*dto.LoginResultDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Register 用户名注册，注册成功直接签发 Token
func (s *userServiceImpl) Register(ctx context.Context, registerDTO *dto.RegisterDTO) (*dto.LoginResultDTO, error) {
	exist, err := s.userRepo.GetUserByUsername(ctx, registerDTO.Username)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUserUsernameExist
	}

	hashed, err := security.HashPassword(registerDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: registerDTO.Username,
		Password: hashed,
		Nickname: registerDTO.Nickname,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login 用户名密码登录
func (s *userServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, loginDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if err := security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.issueToken(user)
}

// Logout 将 Token 签名记入吊销名单，保留到其自然过期
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, 1, security.JWTExpirationTime)
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) issueToken(user *model.User) (*dto.LoginResultDTO, error) {
	token, err := security.GenerateToken(user.ID, SplitRoles(user.Roles))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// SplitRoles 拆分逗号分隔的角色串
func SplitRoles(roles string) []string {
	if roles == "" {
		return nil
	}
	return strings.Split(roles, ",")
}

func toUserDTO(user *model.User) *dto.UserDTO {
	createdAt := user.CreatedAt
	out := &dto.UserDTO{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Roles:    SplitRoles(user.Roles),
	}
	if !createdAt.IsZero() {
		out.CreatedAt = &createdAt
	}
	return out
}
