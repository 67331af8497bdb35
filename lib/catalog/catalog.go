package catalog

import (
	"os"
	"strings"

	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

// Section - именованная группа вопросов
type Section struct {
	Title     string   `json:"title" yaml:"title"`
	Questions []string `json:"questions" yaml:"questions"`
}

// Catalog - неизменяемый упорядоченный список разделов.
// После создания не модифицируется, наружу отдаются только копии.
type Catalog struct {
	sections []Section
}

var Instance *Catalog

func NewHandler(catalogFile string) error {
	if catalogFile == "" {
		Instance = Default()
		return nil
	}
	cat, err := LoadFile(catalogFile)
	if err != nil {
		return err
	}
	Instance = cat
	return nil
}

func New(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, errors.New("каталог не содержит разделов")
	}
	result := make([]Section, 0, len(sections))
	for idx, section := range sections {
		title := strings.TrimSpace(section.Title)
		if title == "" {
			return nil, errors.Errorf("у раздела %d отсутствует название", idx)
		}
		if len(section.Questions) == 0 {
			return nil, errors.Errorf("раздел \"%s\" не содержит вопросов", title)
		}
		questions := make([]string, 0, len(section.Questions))
		for qIdx, question := range section.Questions {
			if strings.TrimSpace(question) == "" {
				return nil, errors.Errorf("в разделе \"%s\" пустой вопрос %d", title, qIdx)
			}
			questions = append(questions, question)
		}
		result = append(result, Section{Title: title, Questions: questions})
	}
	return &Catalog{sections: result}, nil
}

type catalogFile struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

// LoadFile читает каталог из yaml/json файла
func LoadFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "файл каталога недоступен: %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf("файл каталога не является обычным файлом: %s", path)
	}
	data := new(catalogFile)
	if err = configor.New(&configor.Config{}).Load(data, path); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла каталога")
	}
	return New(data.Sections)
}

func (c *Catalog) Len() int {
	return len(c.sections)
}

func (c *Catalog) Sections() []Section {
	result := make([]Section, 0, len(c.sections))
	for idx := range c.sections {
		section, _ := c.Section(idx)
		result = append(result, section)
	}
	return result
}

func (c *Catalog) Section(sectionIndex int) (Section, bool) {
	if sectionIndex < 0 || sectionIndex >= len(c.sections) {
		return Section{}, false
	}
	src := c.sections[sectionIndex]
	questions := make([]string, len(src.Questions))
	copy(questions, src.Questions)
	return Section{Title: src.Title, Questions: questions}, true
}

func (c *Catalog) QuestionCount(sectionIndex int) int {
	if sectionIndex < 0 || sectionIndex >= len(c.sections) {
		return 0
	}
	return len(c.sections[sectionIndex].Questions)
}

func (c *Catalog) Question(sectionIndex, questionIndex int) (string, bool) {
	if !c.Contains(sectionIndex, questionIndex) {
		return "", false
	}
	return c.sections[sectionIndex].Questions[questionIndex], true
}

func (c *Catalog) Contains(sectionIndex, questionIndex int) bool {
	return questionIndex >= 0 && questionIndex < c.QuestionCount(sectionIndex)
}
