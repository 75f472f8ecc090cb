package main

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"

	"blog/pkg/category"
	"blog/pkg/common"
	"blog/pkg/location"
	"blog/pkg/post"
	"blog/pkg/user"
)

var (
	f             = faker.New()
	onePassForAll = common.HashPass("sdfsdfsdf", common.RandStringRunes(8)) // salt must have len of 8
)

type IUserRepo interface {
	Add(*user.User) (string, error)
	GetAll() ([]*user.User, error)
}

// seed fills the stores with fake content for a better local experience.
func seed(userRepo IUserRepo, categoryRepo *category.Repo, locationRepo *location.Repo, postRepo *post.Repo) {
	ctx := context.Background()

	authors, err := userRepo.GetAll()
	if err != nil {
		log.Fatalln("seed: can't get all authors:", err)
	}
	if len(authors) == 0 {
		createAuthors(userRepo)
		if authors, err = userRepo.GetAll(); err != nil {
			log.Fatalln("seed: can't get all authors:", err)
		}
	}

	categories := genCategories(ctx, categoryRepo)
	locations := genLocations(ctx, locationRepo)

	for i := 0; i <= 15; i++ {
		p := genPost(authors, categories, locations)
		if _, err := postRepo.Add(ctx, p); err != nil {
			log.Fatalln("seed: can't add post:", err)
		}
		for j := 0; j < rand.Intn(5); j++ {
			if _, err := postRepo.AddComment(ctx, p.Id, randUser(authors), genText()); err != nil {
				log.Fatalln("seed: can't add comment:", err)
			}
		}
	}
}

func createAuthors(userRepo IUserRepo) {
	// User for experiments (not random)
	_, err := userRepo.Add(&user.User{
		Username: "pike",
		Password: onePassForAll,
	})
	if err != nil {
		log.Fatalln("seed: can't create default user:", err)
	}
	for i := 1; i <= 5; i++ {
		username := strings.ToLower(f.Person().FirstName())
		_, err := userRepo.Add(&user.User{
			Username:  username,
			FirstName: f.Person().FirstName(),
			LastName:  f.Person().LastName(),
			Email:     username + "@example.com",
			Password:  onePassForAll,
		})
		if err != nil {
			log.Fatalln("seed: can't add user:", err)
		}
	}
}

func genCategories(ctx context.Context, repo *category.Repo) []*category.Category {
	titles := []string{"Programming", "Music", "Travel", "Funny", "News", "Fashion"}
	categories := []*category.Category{}
	for i, title := range titles {
		c := &category.Category{
			Id:          common.RandStringRunes(12),
			Title:       title,
			Description: genText(),
			Slug:        strings.ToLower(title),
			// One category stays hidden to exercise the visibility gate.
			Published: i != len(titles)-1,
			Created:   time.Now(),
		}
		if _, err := repo.Add(ctx, c); err != nil {
			log.Fatalln("seed: can't add category:", err)
		}
		categories = append(categories, c)
	}
	return categories
}

func genLocations(ctx context.Context, repo *location.Repo) []*location.Location {
	locations := []*location.Location{}
	for i := 0; i < 4; i++ {
		l := &location.Location{
			Id:        common.RandStringRunes(12),
			Name:      f.Address().City(),
			Published: true,
			Created:   time.Now(),
		}
		if _, err := repo.Add(ctx, l); err != nil {
			log.Fatalln("seed: can't add location:", err)
		}
		locations = append(locations, l)
	}
	return locations
}

func genTitle() string {
	return strings.Join(f.Lorem().Words(rand.Intn(5)+3), " ")
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func genPost(users []*user.User, categories []*category.Category, locations []*location.Location) *post.Post {
	p := &post.Post{
		Id:        post.PostId(common.RandStringRunes(12)),
		Title:     genTitle(),
		Text:      genText(),
		Author:    randUser(users),
		Published: rand.Intn(10) > 0,
		// Some posts are scheduled into the future.
		PubDate: time.Now().Add(time.Duration(rand.Intn(96)-84) * time.Hour),
		Created: time.Now(),
	}
	if rand.Intn(4) > 0 {
		p.CategoryId = categories[rand.Intn(len(categories))].Id
	}
	if rand.Intn(2) > 0 {
		p.LocationId = locations[rand.Intn(len(locations))].Id
	}
	return p
}

func randUser(users []*user.User) *user.User {
	idx := rand.Intn(len(users))
	return users[idx]
}
