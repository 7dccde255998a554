// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-note-keeper/models"

const demoNoteTitle = "Demo"

// demoNoteText showcases the Markdown a note can use. It must stay within
// the note text limit.
const demoNoteText = `# Это H1

## Это H2

### Это H3

#### Это H4

##### Это H5

###### Это H6

* __Тезис №1__ Раскрываем тезис.
* __Тезис №2__ Раскрываем тезис.

---

__Жирный__ и **тоже жирный**

*Курсив* и _тоже курсив_

~~Зачеркнутый~~

- Пункт 1
- Пункт 2
- Пункт 3

или

+ Пункт 1
+ Пункт 2

---

1. Пункт 1
    + Подпункт A
        - Подподпункт a
2. Пункт 2
    1. Подпункт 2.1.
        1. Подподпункт 2.1.1
3. Пункт 3
`

// DemoNote is the note every new account starts with.
func DemoNote() models.NoteInput {
	return models.NoteInput{
		Title: demoNoteTitle,
		Text:  demoNoteText,
	}
}
